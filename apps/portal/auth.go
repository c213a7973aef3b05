package main

import (
	"context"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/Tahsina2226/course-event-management/core/session"
)

var readPasswordFunc = term.ReadPassword // mockable

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

func (cli *commandLine) loginCmd(args []string) error {
	cmd := flag.NewFlagSet("login", flag.ExitOnError)
	email := cmd.String("email", "", "The account's email. The password will be prompted next.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		cmd.Usage()
		return errHelp
	}

	pwd, err := cli.promptPassword()
	if err != nil {
		return err
	}
	if pwd == "" {
		cmd.Usage()
		return errHelp
	}

	sess, err := cli.sessions.Login(context.Background(), session.Credentials{Email: *email, Password: pwd})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "logged in as %s (%s)\n", sess.Email, sess.Role)
	if dept := sess.CurrentDepartment(); dept != "" {
		fmt.Fprintf(cli.out, "enrolled department: %s\n", dept)
	}
	return nil
}

func (cli *commandLine) registerCmd(args []string) error {
	cmd := flag.NewFlagSet("register", flag.ExitOnError)
	name := cmd.String("name", "", "The account holder's full name.")
	email := cmd.String("email", "", "The account's email. The password will be prompted next.")
	role := cmd.String("role", "user", "The account role: user or admin.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" {
		cmd.Usage()
		return errHelp
	}

	pwd, err := cli.promptPassword()
	if err != nil {
		return err
	}
	if pwd == "" {
		cmd.Usage()
		return errHelp
	}

	sess, err := cli.sessions.Register(context.Background(), session.NewAccount{
		Name:     *name,
		Email:    *email,
		Role:     *role,
		Password: pwd,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "registered and logged in as %s (%s)\n", sess.Email, sess.Role)
	return nil
}

func (cli *commandLine) logoutCmd() error {
	if _, err := cli.sessions.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "logged out")
	return nil
}

func (cli *commandLine) whoamiCmd() error {
	sess := cli.sessions.Current()
	if !sess.LoggedIn() {
		fmt.Fprintln(cli.out, "not logged in")
		return nil
	}
	fmt.Fprintf(cli.out, "%s (%s)\n", sess.Email, sess.Role)
	if dept := sess.CurrentDepartment(); dept != "" {
		fmt.Fprintf(cli.out, "enrolled department: %s\n", dept)
	}
	return nil
}
