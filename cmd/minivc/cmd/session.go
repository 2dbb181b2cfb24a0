package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/minivc/minivc/pkg/core"
)

// session is one interactive run over a repository and its working set.
// The working set and the staging area live for the session; commits
// outlive it.
type session struct {
	repo *core.Repo
	ws   *core.Workspace
	in   *bufio.Scanner
	out  io.Writer
}

func newSession(repo *core.Repo, ws *core.Workspace, in io.Reader, out io.Writer) *session {
	return &session{
		repo: repo,
		ws:   ws,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (s *session) run() error {
	fmt.Fprintln(s.out, "minivc running. Commands: add <file>, edit <file>, commit <msg>, log, checkout <id>, status, exit")
	for {
		fmt.Fprint(s.out, ">> ")
		line, ok := s.readLine()
		if !ok || line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}
		s.dispatch(context.Background(), line)
	}
}

func (s *session) dispatch(ctx context.Context, line string) {
	verb, arg := splitCommand(line)
	switch verb {
	case "add":
		s.add(arg)
	case "edit":
		s.edit(arg)
	case "commit":
		s.commit(ctx, arg)
	case "log":
		if err := renderLog(ctx, s.out, s.repo); err != nil {
			fmt.Fprintln(s.out, "Error:", err)
		}
	case "checkout":
		s.checkout(ctx, arg)
	case "status":
		s.status()
	default:
		fmt.Fprintln(s.out, "Unknown command!")
	}
}

func (s *session) add(name string) {
	if name == "" {
		fmt.Fprintln(s.out, "Usage: add <file>")
		return
	}
	f, ok := s.ws.Get(name)
	if !ok {
		loaded, err := s.ws.Load(name)
		switch {
		case err == nil:
			f = loaded
		case os.IsNotExist(errors.Cause(err)):
			fmt.Fprint(s.out, "File does not exist on disk. Create new? (y/n): ")
			if !s.confirm() {
				return
			}
			created, cerr := s.ws.Create(name)
			if cerr != nil {
				fmt.Fprintln(s.out, "Error:", cerr)
				return
			}
			f = created
			fmt.Fprintln(s.out, "File created.")
		default:
			fmt.Fprintln(s.out, "Error:", err)
			return
		}
		s.ws.Add(f)
	}
	if s.repo.Track(f) {
		fmt.Fprintln(s.out, "Added file to staging:", f.Name())
	}
}

func (s *session) edit(name string) {
	if name == "" {
		fmt.Fprintln(s.out, "Usage: edit <file>")
		return
	}
	f, ok := s.ws.Get(name)
	if !ok {
		fmt.Fprintln(s.out, "File not found in working directory!")
		return
	}
	fmt.Fprintf(s.out, "Enter new content for %s: ", name)
	line, _ := s.readLine()
	f.Update([]byte(line))
	fmt.Fprintf(s.out, "%s updated in memory (not saved to disk).\n", name)
	fmt.Fprintln(s.out, "Note: Changes are staged. Use 'commit <msg>' to save these changes permanently.")
	if s.repo.Track(f) {
		fmt.Fprintln(s.out, "Added file to staging:", f.Name())
	}
}

func (s *session) commit(ctx context.Context, message string) {
	snap, err := s.repo.Commit(ctx, message)
	switch {
	case errors.Is(err, core.ErrEmptyCommit):
		fmt.Fprintln(s.out, "No edited files to commit! Edit files first.")
	case err != nil:
		fmt.Fprintln(s.out, "Error:", err)
	default:
		fmt.Fprintf(s.out, "Commit %d done! Changes saved and original files updated.\n", snap.ID)
	}
}

func (s *session) checkout(ctx context.Context, arg string) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Usage: checkout <id>")
		return
	}
	err = s.repo.Checkout(ctx, id, s.ws)
	switch {
	case errors.Is(err, core.ErrCommitNotFound):
		fmt.Fprintln(s.out, "Commit ID not found!")
	case err != nil:
		fmt.Fprintln(s.out, "Error:", err)
	default:
		fmt.Fprintf(s.out, "Checked out commit %d, files restored on disk.\n", id)
	}
}

func (s *session) status() {
	files := s.ws.Files()
	if len(files) == 0 {
		fmt.Fprintln(s.out, "No working files.")
		return
	}
	fmt.Fprintln(s.out, "Current Working Files:")
	for _, f := range files {
		marker := " "
		if f.Dirty() {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s [%s] %s: %s\n", marker, f.Kind(), f.Name(), string(f.Staged()))
	}
}

func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) confirm() bool {
	line, ok := s.readLine()
	if !ok {
		return false
	}
	return strings.EqualFold(line, "y")
}

func splitCommand(line string) (verb, arg string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	verb = parts[0]
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}
	return verb, arg
}
