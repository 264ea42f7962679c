package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cykrypt/registration/svc/registration"
)

// teamFile is the YAML layout accepted by validate and register --file.
type teamFile struct {
	TeamName string                `yaml:"teamName"`
	Event    string                `yaml:"event"`
	College  string                `yaml:"college"`
	CTFMode  string                `yaml:"ctfMode"`
	Leader   registration.Leader   `yaml:"leader"`
	Members  []registration.Member `yaml:"members"`
}

func readTeamFile(path string) (teamFile, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return teamFile{}, err
		}
		defer f.Close()
		r = f
	}
	return decodeTeamFile(r)
}

func decodeTeamFile(r io.Reader) (teamFile, error) {
	var tf teamFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil && !errors.Is(err, io.EOF) {
		return teamFile{}, fmt.Errorf("parse team file: %w", err)
	}
	return tf, nil
}

func (tf teamFile) registration() registration.Registration {
	return registration.Registration{
		TeamName: tf.TeamName,
		Event:    registration.Event(tf.Event),
		College:  tf.College,
		CTFMode:  registration.CTFMode(tf.CTFMode),
		Leader:   tf.Leader,
		Members:  tf.Members,
	}.Normalize()
}

// fields flattens the file into form field keys.
func (tf teamFile) fields() map[string]string {
	reg := tf.registration()
	out := map[string]string{
		registration.KeyTeamName:       reg.TeamName,
		registration.KeyCollege:        reg.College,
		registration.KeyEvent:          string(reg.Event),
		registration.KeyCTFMode:        string(reg.CTFMode),
		registration.KeyLeaderName:     reg.Leader.Name,
		registration.KeyLeaderPhone:    reg.Leader.Phone,
		registration.KeyLeaderEmail:    reg.Leader.Email,
		registration.KeyLeaderYearDept: reg.Leader.YearDept,
	}
	for i, m := range reg.Members {
		out[registration.MemberKey(i, registration.MemberName)] = m.Name
		out[registration.MemberKey(i, registration.MemberPhone)] = m.Phone
		out[registration.MemberKey(i, registration.MemberEmail)] = m.Email
	}
	return out
}
