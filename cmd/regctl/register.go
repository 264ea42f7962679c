package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cykrypt/registration/client"
	"github.com/cykrypt/registration/svc/registration"
)

var labels = map[string]string{
	registration.KeyTeamName:       "Team name",
	registration.KeyCollege:        "College",
	registration.KeyEvent:          "Event",
	registration.KeyCTFMode:        "CTF mode (Online/Offline)",
	registration.KeyLeaderName:     "Leader name",
	registration.KeyLeaderPhone:    "Leader phone",
	registration.KeyLeaderEmail:    "Leader email",
	registration.KeyLeaderYearDept: "Leader year/department",
}

func label(key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	var i int
	var field string
	if _, err := fmt.Sscanf(strings.Replace(key, "_", " ", 1), "member%d %s", &i, &field); err == nil {
		return fmt.Sprintf("Member %d %s", i+1, field)
	}
	return key
}

func newRegisterCmd(a *app) *cobra.Command {
	var (
		endpoint string
		file     string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Fill in and submit a registration interactively",
		Example: `  regctl register --endpoint https://cykrypt.example/api/register
  regctl register --endpoint http://localhost:8080/api/register -f team.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl := client.NewController(a.transport(endpoint), client.WithClock(a.now))

			members := registration.MinMembers
			if file != "" {
				tf, err := readTeamFile(file)
				if err != nil {
					return err
				}
				for k, v := range tf.fields() {
					ctrl.SetField(k, v)
				}
				members = len(tf.Members)
			}
			for ctrl.Members() < min(members, registration.MaxMembers) {
				ctrl.AddMember()
			}

			w := wizard{ctrl: ctrl, in: bufio.NewReader(cmd.InOrStdin()), out: cmd.OutOrStdout()}
			return w.run(cmd)
		},
	}
	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "http://localhost:8080/api/register", "registration endpoint URL")
	cmd.Flags().StringVarP(&file, "file", "f", "", "prefill answers from a YAML team file")
	return cmd
}

type wizard struct {
	ctrl *client.Controller
	in   *bufio.Reader
	out  io.Writer
}

func (w wizard) run(cmd *cobra.Command) error {
	fmt.Fprintf(w.out, "Events: %s, %s, %s\n", registration.EventCTF, registration.EventForensics, registration.EventPaper)

	for {
		if err := w.fillStep(); err != nil {
			return err
		}
		step := w.ctrl.Step()
		if !w.ctrl.Next() {
			w.printErrors()
			continue
		}
		if step < client.StepMembers {
			continue
		}
		if w.ctrl.Members() < registration.MaxMembers {
			ans, err := w.ask("Add a third member? [y/N]", "")
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			if strings.EqualFold(ans, "y") {
				w.ctrl.AddMember()
				continue
			}
		}
		break
	}

	err := w.ctrl.Submit(cmd.Context())
	switch {
	case err == nil:
		fmt.Fprintln(w.out, "Registration submitted.")
		return nil
	case errors.Is(err, client.ErrInvalidStep):
		w.printErrors()
	default:
		if msg := w.ctrl.Message(); msg != "" {
			fmt.Fprintln(w.out, msg)
		}
		w.printErrors()
	}
	return err
}

// fillStep prompts for every field of the current step that is empty or
// shown as invalid.
func (w wizard) fillStep() error {
	state := w.ctrl.State()
	for _, key := range w.ctrl.Fields() {
		if key == registration.KeyCTFMode && !registration.Event(state.Values[registration.KeyEvent]).IsCTF() {
			continue
		}
		if state.Values[key] != "" && state.Errors[key] == "" {
			continue
		}
		v, err := w.ask(label(key), state.Values[key])
		if err != nil {
			return err
		}
		if key == registration.KeyEvent {
			if e, ok := registration.ParseEvent(v); ok {
				v = string(e)
			}
		}
		w.ctrl.SetField(key, v)
		w.ctrl.Blur(key)
		state = w.ctrl.State()
		if hint := state.Warnings[key]; hint != "" {
			fmt.Fprintf(w.out, "  hint: %s\n", hint)
		}
	}
	return nil
}

func (w wizard) ask(prompt, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(w.out, "%s [%s]: ", prompt, current)
	} else {
		fmt.Fprintf(w.out, "%s: ", prompt)
	}
	line, err := w.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(prompt), err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current, nil
	}
	return line, nil
}

func (w wizard) printErrors() {
	errs := w.ctrl.VisibleErrors()
	for _, k := range slices.Sorted(maps.Keys(errs)) {
		fmt.Fprintf(w.out, "  %s: %s\n", label(k), errs[k])
	}
}
