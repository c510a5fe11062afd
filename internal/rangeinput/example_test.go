package rangeinput_test

import (
	"fmt"
	"time"

	"stint/internal/daterange"
	"stint/internal/rangeinput"
)

// ExampleController demonstrates typing a range into the two fields.
func ExampleController() {
	c := rangeinput.New(rangeinput.Options{})

	c.Focus(daterange.Start)
	c.Edit(daterange.Start, "2017-01-22")
	c.Blur(daterange.Start)

	c.Focus(daterange.End)
	for _, effect := range c.Edit(daterange.End, "2017-01-24") {
		if change, ok := effect.(rangeinput.ChangeEffect); ok {
			start, _ := change.Range.Start.Time()
			end, _ := change.Range.End.Time()
			fmt.Println("selected:", start.Format("2006-01-02"), "to", end.Format("2006-01-02"))
		}
	}
	c.Blur(daterange.End)

	fmt.Println("start field:", c.DisplayText(daterange.Start))
	fmt.Println("end field:", c.DisplayText(daterange.End))

	// Output:
	// selected: 2017-01-22 to 2017-01-24
	// start field: 2017-01-22
	// end field: 2017-01-24
}

// ExampleController_calendar demonstrates the calendar click path.
func ExampleController_calendar() {
	c := rangeinput.New(rangeinput.Options{AllowUnboundedRange: true})

	jan := func(d int) time.Time {
		return time.Date(2017, time.January, d, 0, 0, 0, 0, time.UTC)
	}

	c.ClickDay(jan(22))
	c.ClickDay(jan(24))
	fmt.Println(c.DisplayText(daterange.Start), "-", c.DisplayText(daterange.End))

	// Re-clicking the start endpoint deselects it.
	c.ClickDay(jan(22))
	fmt.Printf("%q - %q\n", c.DisplayText(daterange.Start), c.DisplayText(daterange.End))

	// Output:
	// 2017-01-22 - 2017-01-24
	// "" - "2017-01-24"
}
