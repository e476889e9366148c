package game

const (
	ButtonWidth  = 200.0
	ButtonHeight = 50.0

	gunSlotSize = 120.0
)

// Layout is every clickable rectangle, in world units, for a world of a
// given size. Menu, in-game menu and level-complete screens share the
// same three-row column.
type Layout struct {
	Start, Difficulty, Quit Rect
	Shop                    Rect

	Continue, MainMenu, InGameQuit Rect

	Retry, NextLevel, BackToMenu Rect

	ShopBack Rect
	ShopRows [GunCount]Rect

	GunSlots [GunCount]Rect
	Select   Rect
}

func NewLayout(w, h float64) Layout {
	x := w/2 - ButtonWidth/2
	row := func(i int) Rect {
		return Rect{x, h/2 - 110 + float64(i)*60, ButtonWidth, ButtonHeight}
	}

	l := Layout{
		Start:      row(0),
		Difficulty: row(1),
		Quit:       row(2),
		Shop:       Rect{w - 170, 20, 150, 50},

		Continue:   row(0),
		MainMenu:   row(1),
		InGameQuit: row(2),

		Retry:      row(0),
		NextLevel:  row(1),
		BackToMenu: row(2),

		ShopBack: Rect{20, 20, 150, 50},
		Select:   Rect{w/2 - 70, h*0.7 - 25, 140, 50},
	}
	for i := range GunCount {
		l.ShopRows[i] = Rect{w/2 - 200, h*0.3 - 80 + float64(i)*100, 400, 80}

		cx := w / 5 * float64(i+1)
		l.GunSlots[i] = Rect{cx - gunSlotSize/2, h/2 - gunSlotSize/2, gunSlotSize, gunSlotSize}
	}
	return l
}
