package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/Tahsina2226/course-event-management/core/routine"
)

func (cli *commandLine) routinesCmd(args []string) error {
	if len(args) == 0 {
		return cli.listRoutines("", false)
	}

	switch args[0] {
	case "list":
		cmd := flag.NewFlagSet("routines list", flag.ExitOnError)
		department := cmd.String("department", "", "Only show routines of this department.")
		refresh := cmd.Bool("refresh", false, "Force a re-fetch instead of serving the cached list.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.listRoutines(*department, *refresh)
	case "add":
		cmd := flag.NewFlagSet("routines add", flag.ExitOnError)
		course := cmd.String("course", "", "The course name.")
		day := cmd.String("day", "", "The weekday, e.g. Monday.")
		time := cmd.String("time", "", "The slot time, e.g. 10:00.")
		room := cmd.String("room", "", "The room, e.g. A-301.")
		batchID := cmd.Int("batch", 0, "The batch id this routine belongs to.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		if err := cli.requireAdmin(); err != nil {
			return err
		}
		r, err := cli.routines.Create(context.Background(), routine.NewRoutine{
			CourseName: *course,
			Day:        *day,
			Time:       *time,
			Room:       *room,
			BatchID:    *batchID,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "created routine #%d %s\n", r.ID, r.CourseName)
		return nil
	case "edit":
		cmd := flag.NewFlagSet("routines edit", flag.ExitOnError)
		id := cmd.Int("id", 0, "The routine id.")
		course := cmd.String("course", "", "New course name; empty leaves it unchanged.")
		day := cmd.String("day", "", "New weekday; empty leaves it unchanged.")
		time := cmd.String("time", "", "New time; empty leaves it unchanged.")
		room := cmd.String("room", "", "New room; empty leaves it unchanged.")
		batchID := cmd.Int("batch", 0, "New batch id; 0 leaves it unchanged.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			cmd.Usage()
			return errHelp
		}
		if err := cli.requireAdmin(); err != nil {
			return err
		}
		r, err := cli.routines.Update(context.Background(), *id, routine.UpdateRoutine{
			CourseName: *course,
			Day:        *day,
			Time:       *time,
			Room:       *room,
			BatchID:    *batchID,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "updated routine #%d %s\n", r.ID, r.CourseName)
		return nil
	case "delete":
		cmd := flag.NewFlagSet("routines delete", flag.ExitOnError)
		id := cmd.Int("id", 0, "The routine id.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			cmd.Usage()
			return errHelp
		}
		if err := cli.requireAdmin(); err != nil {
			return err
		}
		if err := cli.routines.Delete(context.Background(), *id); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "deleted routine #%d\n", *id)
		return nil
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listRoutines(department string, refresh bool) error {
	ctx := context.Background()
	var routines []routine.Routine
	var err error
	if refresh {
		routines, err = cli.routines.Refresh(ctx, department)
	} else {
		routines, err = cli.routines.List(ctx, department)
	}
	if err != nil {
		return err
	}

	w := cli.newTable()
	fmt.Fprintln(w, "ID\tCOURSE\tDAY\tTIME\tROOM\tBATCH")
	for _, r := range routines {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n", r.ID, r.CourseName, r.Day, r.Time, r.Room, r.BatchID)
	}
	return w.Flush()
}
