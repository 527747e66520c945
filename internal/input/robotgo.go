package input

import (
	"github.com/go-vgo/robotgo"
)

// Robotgo injects input through the robotgo library.
type Robotgo struct{}

func (Robotgo) ScreenSize() (int, int) {
	return robotgo.GetScreenSize()
}

func (Robotgo) Position() (int, int) {
	return robotgo.Location()
}

func (Robotgo) Move(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

func (Robotgo) KeyTap(key string) error {
	return robotgo.KeyTap(key)
}
