package main

import (
	"log"
	"os"

	"github.com/tmerlos/ciriaqui/core/absence"
	"github.com/tmerlos/ciriaqui/core/teacher"
	remoteapi "github.com/tmerlos/ciriaqui/storage/remote"
)

func main() {
	defer os.Exit(0)

	logger := log.New(os.Stdout, "CLI : ", log.LstdFlags)

	client := remoteapi.NewClient()
	cli := commandLine{
		absenceSvc: absence.NewService(remoteapi.NewAbsenceRepository(client), nil),
		teacherSvc: teacher.NewService(remoteapi.NewTeacherRepository(client)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Println(err)
		}
		os.Exit(1)
	}
}
