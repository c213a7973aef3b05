package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/Tahsina2226/course-event-management/core/event"
	"github.com/Tahsina2226/course-event-management/core/news"
)

func (cli *commandLine) eventsCmd(args []string) error {
	cmd := flag.NewFlagSet("events", flag.ExitOnError)
	refresh := cmd.Bool("refresh", false, "Force a re-fetch instead of serving the cached list.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	var events []event.Event
	var err error
	if *refresh {
		events, err = cli.events.Refresh(ctx)
	} else {
		events, err = cli.events.List(ctx)
	}
	if err != nil {
		return err
	}

	w := cli.newTable()
	fmt.Fprintln(w, "ID\tDATE\tTITLE\tLOCATION")
	for _, e := range events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Date, e.Title, e.Location)
	}
	return w.Flush()
}

func (cli *commandLine) newsCmd(args []string) error {
	cmd := flag.NewFlagSet("news", flag.ExitOnError)
	refresh := cmd.Bool("refresh", false, "Force a re-fetch instead of serving the cached list.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	var items []news.News
	var err error
	if *refresh {
		items, err = cli.news.Refresh(ctx)
	} else {
		items, err = cli.news.List(ctx)
	}
	if err != nil {
		return err
	}

	w := cli.newTable()
	fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tTITLE")
	for _, n := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", n.ID, n.Date.String, n.Category.String, n.Title)
	}
	return w.Flush()
}
