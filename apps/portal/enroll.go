package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/Tahsina2226/course-event-management/core/enroll"
)

func (cli *commandLine) enrollCmd(args []string) error {
	cmd := flag.NewFlagSet("enroll", flag.ExitOnError)
	batchID := cmd.Int("batch", 0, "The id of the batch to enroll in.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *batchID == 0 {
		cmd.Usage()
		return errHelp
	}

	ctx := context.Background()
	b, err := cli.batches.GetByID(ctx, *batchID)
	if err != nil {
		return err
	}

	outcome, err := cli.engine.Attempt(ctx, b)
	switch outcome.Status {
	case enroll.StatusEnrolled:
		fmt.Fprintln(cli.out, outcome.Message)
		return err // nil unless recording the local flag failed
	case enroll.StatusDepartmentConflict:
		fmt.Fprintf(cli.out, "You're already enrolled in the %s department.\n", outcome.Department)
		return err
	case enroll.StatusNotAuthorized:
		fmt.Fprintln(cli.out, "Please log in as a student to enroll.")
		return err
	default:
		fmt.Fprintln(cli.out, "Enrollment failed. Please try again.")
		return err
	}
}
