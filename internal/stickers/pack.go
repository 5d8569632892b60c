// Package stickers is a sticker-pack manager list whose rows each carry a
// floating action menu. It hosts the floatmenu component in a real
// bubbletea program.
package stickers

// Status is a pack's install state.
type Status int

const (
	StatusAvailable Status = iota
	StatusInstalled
)

func (s Status) String() string {
	if s == StatusInstalled {
		return "installed"
	}
	return "available"
}

// Pack is one sticker pack. Packs live in memory only.
type Pack struct {
	ID          string
	Key         string
	Title       string
	Author      string
	Description string
	Count       int
	Status      Status
	Blessed     bool
}

// Action is what a row menu option does to its pack.
type Action string

const (
	ActionInstall   Action = "install"
	ActionUninstall Action = "uninstall"
	ActionCopyLink  Action = "copy-link"
	ActionForward   Action = "forward"
	ActionDetails   Action = "details"
)

// SamplePacks returns the packs shown by the demo.
func SamplePacks() []Pack {
	return []Pack{
		{
			ID: "9acc9e8aba563d26a4994e69263e3b25", Key: "5a6dff3948c28efb9b7aaf93ecc375c69fc316e78077ed26867a14d10a0f6a12",
			Title: "Bandit the Cat", Author: "Agnes Lee", Count: 24, Status: StatusInstalled, Blessed: true,
			Description: "A mischievous tabby with opinions about everything.",
		},
		{
			ID: "e61fa0867031597467ccc036cc65d403", Key: "13ae7b1a7407318280e9b38c1261ded38e0e7138b9f964a6ccbb73e40f737a9b",
			Title: "Swoon / Hands", Author: "Swoon", Count: 16, Blessed: true,
			Description: "Hand gestures for every mood.",
		},
		{
			ID: "cca32f5b905208b7d0f1e17f23fdc185", Key: "8bf8e95f7a45bdeafe0c8f5b002ef01ab95b8f1b5baac4019ccd6b6be0b1837a",
			Title: "Chug the Mouse", Author: "Cassie Chen", Count: 20,
			Description: "A tiny mouse with a very large mug of coffee.",
		},
		{
			ID: "3c1d4a2fbd6f8c9a55e0b6d1a2c7e4f0", Key: "a7c3e1f5b9d2c4e6f8a0b2c4d6e8f0a1b3c5d7e9f1a3b5c7d9e1f3a5b7c9d1e3",
			Title: "Pixel Planets", Author: "Orbit Studio", Count: 12,
			Description: "Eight-bit worlds orbiting a very patient sun.",
		},
		{
			ID: "b2e4f6a8c0d2e4f6a8b0c2d4e6f8a0b2", Key: "f0e1d2c3b4a5968778695a4b3c2d1e0f1e2d3c4b5a69788796a5b4c3d2e1f0a1",
			Title: "Cozy Cats", Author: "Mira Holt", Count: 30, Status: StatusInstalled,
			Description: "Blankets, naps and the occasional knocked-over glass.",
		},
	}
}
