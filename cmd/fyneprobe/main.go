// Command fyneprobe opens a minimal window and closes it after five
// seconds. Run it to check the desktop toolkit works on a machine before
// debugging bsviewer itself.
package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"
)

func main() {
	fmt.Println("[fyneprobe] starting minimal Fyne app")
	a := app.NewWithID("com.davidyu.blackscholes.probe")
	w := a.NewWindow("bsviewer toolkit probe")
	w.SetContent(widget.NewLabel("Fyne works here; bsviewer should too. Closing in 5s."))
	go func() {
		time.Sleep(5 * time.Second)
		fmt.Println("[fyneprobe] closing window via fyne.Do")
		fyne.Do(func() { w.Close() })
	}()
	w.ShowAndRun()
	fmt.Println("[fyneprobe] exited cleanly")
}
