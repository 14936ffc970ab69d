// Package dummyapi is an in-memory stand-in for the remote record-keeping
// API, behaving like the real service does over the wire: it enforces the
// no-overlap rule itself (the 409 case) and remains the source of truth for
// ids. Meant for tests and local hacking without a backend around.
package dummyapi

import (
	"sync"

	"github.com/tmerlos/ciriaqui/core/absence"
	"github.com/tmerlos/ciriaqui/core/subject"
	"github.com/tmerlos/ciriaqui/core/teacher"
)

type DB struct {
	mu  sync.RWMutex
	seq int

	absences  map[int]*absence.Absence
	subjectOf map[int]int // absence id -> subject id

	teachers  map[int]*teacher.Teacher
	passwords map[int]string

	subjects map[int]*subject.Subject
}

func NewDB() *DB {
	return &DB{
		absences:  make(map[int]*absence.Absence),
		subjectOf: make(map[int]int),
		teachers:  make(map[int]*teacher.Teacher),
		passwords: make(map[int]string),
		subjects:  make(map[int]*subject.Subject),
	}
}

func (db *DB) nextID() int {
	db.seq++
	return db.seq
}

// AddTeacher seeds a teacher account.
func (db *DB) AddTeacher(tchr teacher.Teacher, password string) teacher.Teacher {
	db.mu.Lock()
	defer db.mu.Unlock()

	if tchr.ID == 0 {
		tchr.ID = db.nextID()
	}
	db.teachers[tchr.ID] = &tchr
	db.passwords[tchr.ID] = password
	return tchr
}

// AddSubject seeds a subject.
func (db *DB) AddSubject(sub subject.Subject) subject.Subject {
	db.mu.Lock()
	defer db.mu.Unlock()

	if sub.ID == 0 {
		sub.ID = db.nextID()
	}
	db.subjects[sub.ID] = &sub
	return sub
}

// AddAbsence seeds an absence directly, bypassing the overlap rule;
// subjectID may be 0.
func (db *DB) AddAbsence(a absence.Absence, subjectID int) absence.Absence {
	db.mu.Lock()
	defer db.mu.Unlock()

	if a.ID == 0 {
		a.ID = db.nextID()
	}
	db.absences[a.ID] = &a
	if subjectID != 0 {
		db.subjectOf[a.ID] = subjectID
	}
	return a
}

func (db *DB) absencesByTeacher(teacherID int) []absence.Absence {
	absences := make([]absence.Absence, 0)
	for _, a := range db.absences {
		if a.TeacherID == teacherID {
			absences = append(absences, *a)
		}
	}
	return absences
}
