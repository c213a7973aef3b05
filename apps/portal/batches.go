package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/Tahsina2226/course-event-management/core/batch"
)

func (cli *commandLine) batchesCmd(args []string) error {
	if len(args) == 0 {
		return cli.listBatches(false)
	}

	switch args[0] {
	case "list":
		cmd := flag.NewFlagSet("batches list", flag.ExitOnError)
		refresh := cmd.Bool("refresh", false, "Force a re-fetch instead of serving the cached list.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.listBatches(*refresh)
	case "add":
		cmd := flag.NewFlagSet("batches add", flag.ExitOnError)
		name := cmd.String("name", "", "The batch name, e.g. CS-2025.")
		department := cmd.String("department", "", "The department, e.g. CS.")
		semester := cmd.String("semester", "", "The semester, e.g. Fall 2025.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		if err := cli.requireAdmin(); err != nil {
			return err
		}
		b, err := cli.batches.Create(context.Background(), batch.NewBatch{
			Name:       *name,
			Department: *department,
			Semester:   *semester,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "created batch #%d %s\n", b.ID, b.Name)
		return nil
	case "edit":
		cmd := flag.NewFlagSet("batches edit", flag.ExitOnError)
		id := cmd.Int("id", 0, "The batch id.")
		name := cmd.String("name", "", "New name; empty leaves it unchanged.")
		department := cmd.String("department", "", "New department; empty leaves it unchanged.")
		semester := cmd.String("semester", "", "New semester; empty leaves it unchanged.")
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
		b, err := cli.batches.Update(context.Background(), *id, batch.UpdateBatch{
			Name:       *name,
			Department: *department,
			Semester:   *semester,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "updated batch #%d %s\n", b.ID, b.Name)
		return nil
	case "delete":
		cmd := flag.NewFlagSet("batches delete", flag.ExitOnError)
		id := cmd.Int("id", 0, "The batch id.")
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
		if err := cli.batches.Delete(context.Background(), *id); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "deleted batch #%d\n", *id)
		return nil
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listBatches(refresh bool) error {
	ctx := context.Background()
	var batches []batch.Batch
	var err error
	if refresh {
		batches, err = cli.batches.Refresh(ctx)
	} else {
		batches, err = cli.batches.List(ctx)
	}
	if err != nil {
		return err
	}

	w := cli.newTable()
	fmt.Fprintln(w, "ID\tNAME\tDEPARTMENT\tSEMESTER")
	for _, b := range batches {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", b.ID, b.Name, b.Department, b.Semester)
	}
	return w.Flush()
}
