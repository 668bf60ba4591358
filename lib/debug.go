package lib

// Debug enables logging of recoverable rendering problems, such as off-screen
// buttons for which no screen edge intersection was found.
var Debug = false
