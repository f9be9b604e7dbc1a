package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/araddon/anydate"
	"github.com/scylladb/termtables"
)

func main() {
	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Println(`Must pass   ./anydate "2009-08-12T22:15:09.99Z"`)
		return
	}
	datestr := flag.Args()[0]

	table := termtables.CreateTable()
	table.AddHeaders("Func", "Result", "Error")

	addRow := func(name string, ts time.Time, err error) {
		if err != nil {
			table.AddRow(name, "", err.Error())
			return
		}
		table.AddRow(name, ts.Format(time.RFC3339Nano), "")
	}

	ts, err := anydate.Parse(datestr)
	addRow("Parse", ts, err)

	ts, err = anydate.ParseUTC(datestr)
	addRow("ParseUTC", ts, err)

	ts, err = anydate.ParseDate(datestr)
	addRow("ParseDate", ts, err)

	fmt.Println(table.Render())
}
