package component

// TTL destroys an entity after the given number of frame updates. Removal is
// deferred this way so pending sounds on the entity still play.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
