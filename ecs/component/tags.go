package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// AutopilotTag marks the entity whose input comes from the autopilot script.
type AutopilotTag struct{}

var AutopilotTagComponent = NewComponent[AutopilotTag]()
