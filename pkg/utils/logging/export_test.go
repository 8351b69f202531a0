package logging

var NewActionsHandler = newActionsHandler
