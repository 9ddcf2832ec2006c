package component

// Input holds the directional edges for the current frame. Each field is true
// only on the frame the direction was first pressed.
type Input struct {
	Up    bool `mapstructure:"up"`
	Down  bool `mapstructure:"down"`
	Left  bool `mapstructure:"left"`
	Right bool `mapstructure:"right"`
}

func (i Input) Any() bool {
	return i.Up || i.Down || i.Left || i.Right
}

var InputComponent = NewComponent[Input]()
