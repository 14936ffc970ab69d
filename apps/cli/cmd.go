package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/tmerlos/ciriaqui/core/absence"
	"github.com/tmerlos/ciriaqui/core/teacher"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	absenceSvc *absence.Service
	teacherSvc *teacher.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -email EMAIL                    - check a teacher's credentials. The password is prompted next.")
	fmt.Println("  list -teacher-id ID                   - print a teacher's absences")
	fmt.Println("  export -teacher-id ID [-out FILE.ics] - export a teacher's absences as an iCalendar file")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginEmail := loginCmd.String("email", "", "The teacher's email. The password will be prompted next.")

	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	listTeacherID := listCmd.Int("teacher-id", 0, "The teacher's id.")

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportTeacherID := exportCmd.Int("teacher-id", 0, "The teacher's id.")
	exportOut := exportCmd.String("out", "absences.ics", "The output file.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginEmail, string(pwd))
	case "list":
		if err := listCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *listTeacherID == 0 {
			listCmd.Usage()
			return errHelp
		}
		return cli.list(*listTeacherID)
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportTeacherID == 0 {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportTeacherID, *exportOut)
	default:
		cli.printUsage()
		return errHelp
	}
}
