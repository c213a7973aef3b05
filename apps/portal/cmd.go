package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Tahsina2226/course-event-management/core/batch"
	"github.com/Tahsina2226/course-event-management/core/enroll"
	"github.com/Tahsina2226/course-event-management/core/event"
	"github.com/Tahsina2226/course-event-management/core/news"
	"github.com/Tahsina2226/course-event-management/core/routine"
	"github.com/Tahsina2226/course-event-management/core/session"
)

var (
	errHelp        = errors.New("help provided")
	errAdminOnly   = errors.New("permission denied: admin role required")
	errNotLoggedIn = errors.New("not logged in")
)

type commandLine struct {
	out io.Writer

	sessions *session.Service
	batches  *batch.Service
	routines *routine.Service
	events   *event.Service
	news     *news.Service
	engine   *enroll.Engine
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL                      - log in (password prompted)")
	fmt.Fprintln(cli.out, "  register -name NAME -email EMAIL [-role ROLE] - create an account (password prompted)")
	fmt.Fprintln(cli.out, "  logout                                  - log out")
	fmt.Fprintln(cli.out, "  whoami                                  - show the current session")
	fmt.Fprintln(cli.out, "  batches [list|add|edit|delete]          - manage batches (mutations: admin)")
	fmt.Fprintln(cli.out, "  routines [list|add|edit|delete]         - manage class routines (mutations: admin)")
	fmt.Fprintln(cli.out, "  events                                  - list campus events")
	fmt.Fprintln(cli.out, "  news                                    - list campus news")
	fmt.Fprintln(cli.out, "  enroll -batch ID                        - enroll in a batch")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		return cli.loginCmd(args[2:])
	case "register":
		return cli.registerCmd(args[2:])
	case "logout":
		return cli.logoutCmd()
	case "whoami":
		return cli.whoamiCmd()
	case "batches":
		return cli.batchesCmd(args[2:])
	case "routines":
		return cli.routinesCmd(args[2:])
	case "events":
		return cli.eventsCmd(args[2:])
	case "news":
		return cli.newsCmd(args[2:])
	case "enroll":
		return cli.enrollCmd(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// requireAdmin gates mutating batch/routine commands before any request is made.
func (cli *commandLine) requireAdmin() error {
	sess := cli.sessions.Current()
	if !sess.LoggedIn() {
		return errNotLoggedIn
	}
	if !sess.CanManage() {
		return errAdminOnly
	}
	return nil
}

func (cli *commandLine) newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
}
