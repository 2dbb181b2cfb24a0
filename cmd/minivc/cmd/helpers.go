package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/minivc/minivc/pkg/core"
	"github.com/minivc/minivc/pkg/dlogger"
	"github.com/minivc/minivc/pkg/storage"
	"github.com/minivc/minivc/pkg/storage/localfs"
)

// initRepo wires the repository over its two stores: the commit store
// under the repo dir, and the canonical file store which is the working
// directory itself.
func initRepo() (*core.Repo, *core.Workspace, error) {
	logs, err := dlogger.New(viper.GetString("loglevel"))
	if err != nil {
		return nil, nil, err
	}

	base := afero.NewOsFs()
	commitFs := afero.NewBasePathFs(base, viper.GetString("repodir"))
	workFs := afero.NewBasePathFs(base, viper.GetString("workdir"))

	tr := &opentracing.NoopTracer{}
	repo, err := core.New(
		core.CommitStore(storage.Instrument(tr, logs, localfs.New(commitFs))),
		core.FileStore(storage.Instrument(tr, logs, localfs.New(workFs))),
		core.Logger(logs),
	)
	if err != nil {
		return nil, nil, err
	}
	return repo, core.NewWorkspace(workFs), nil
}

// renderLog prints the commit history with the content of every entry.
func renderLog(ctx context.Context, w io.Writer, repo *core.Repo) error {
	snaps := repo.Log()
	if len(snaps) == 0 {
		fmt.Fprintln(w, "No commits yet.")
		return nil
	}
	for _, snap := range snaps {
		fmt.Fprintf(w, "Commit %s: %s at %s\n",
			color.MagentaString("%d", snap.ID),
			snap.Message,
			color.YellowString(snap.Timestamp.Format(time.RFC3339)))
		for _, e := range snap.Entries {
			content, err := repo.EntryContent(ctx, snap.ID, e.Name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "[%s] %s: %s\n", e.Kind, e.Name, string(content))
		}
		fmt.Fprintln(w, "--------------------")
	}
	return nil
}
