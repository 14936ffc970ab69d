package main

import (
	"fmt"
	"os"

	"github.com/tmerlos/ciriaqui/core/absence"
	"github.com/tmerlos/ciriaqui/core/teacher"
)

func (cli *commandLine) login(email, password string) error {
	tchr, err := cli.teacherSvc.Login(teacher.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (id %d)\n", tchr.Name, tchr.ID)
	return nil
}

func (cli *commandLine) list(teacherID int) error {
	absences, err := cli.absenceSvc.ListByTeacher(teacherID)
	if err != nil {
		return err
	}
	if len(absences) == 0 {
		fmt.Println("no absences recorded")
		return nil
	}
	for _, a := range absences {
		fmt.Printf("%4d  %s - %s  %s\n", a.ID, a.BeginDate, a.EndDate, absence.KindLabel(a.Kind))
	}
	return nil
}

func (cli *commandLine) export(teacherID int, out string) error {
	absences, err := cli.absenceSvc.ListByTeacher(teacherID)
	if err != nil {
		return err
	}
	// the calendar endpoint titles events with the teacher's name; the CLI
	// does not hold a session so the label alone has to do
	ics := absence.BuildICS(absences, "")
	if err := os.WriteFile(out, []byte(ics), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %d absences to %s\n", len(absences), out)
	return nil
}
