package engine

import "time"

// Intent is a single player or timer action delivered to Update.
type Intent interface {
	isIntent()
}

// Upload is a manual story upload.
type Upload struct{}

// Tick is the automation timer firing. At is informational only.
type Tick struct {
	At time.Time
}

type BuyTag struct {
	Slot TagSlot
}

type ToggleTag struct {
	Name string
}

type BuyUpgrade struct {
	Slot UpgradeSlot
}

func (Upload) isIntent()     {}
func (Tick) isIntent()       {}
func (BuyTag) isIntent()     {}
func (ToggleTag) isIntent()  {}
func (BuyUpgrade) isIntent() {}

// Update applies one intent to the state.
func (g *GameState) Update(intent Intent) {
	switch in := intent.(type) {
	case Upload:
		g.UploadStory()
	case Tick:
		g.Tick()
	case BuyTag:
		g.BuyTag(in.Slot)
	case ToggleTag:
		g.ToggleTag(in.Name)
	case BuyUpgrade:
		g.BuyUpgrade(in.Slot)
	}
}
