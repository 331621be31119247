package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"arise/internal/remote"
	"arise/internal/storage"
	"arise/internal/ui"
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync snapshots with the remote document store",
		Long:  "Mirrors the local preference and progress snapshots to and from the remote document database configured in ~/.arise.yaml (or ARISE_MONGO_URI).",
	}
	cmd.AddCommand(newSyncPushCmd(), newSyncPullCmd())
	return cmd
}

func newSyncPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Upload local preferences and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !cfg.RemoteConfigured() {
				return errors.New("no remote configured; set remote.uri in ~/.arise.yaml or ARISE_MONGO_URI")
			}

			client, err := remote.Connect(ctx, cfg.Remote.URI)
			if err != nil {
				return err
			}
			defer func() { _ = client.Disconnect(ctx) }()
			store := remote.NewStore(client, cfg.Remote.Database)

			prefs, err := svc.PrefsRepo().Get(ctx, storage.MainUserKey)
			if err != nil {
				return err
			}
			if prefs != nil {
				if err := store.SavePreferences(ctx, cfg.UserID, prefs); err != nil {
					return err
				}
			}
			progress, err := svc.ProgressRepo().GetOrCreateMain(ctx)
			if err != nil {
				return err
			}
			if err := store.SaveProgress(ctx, cfg.UserID, progress); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconCloud+" Pushed snapshots for "+cfg.UserID))
			return nil
		},
	}
}

func newSyncPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Download remote preferences and progress over the local copies",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !cfg.RemoteConfigured() {
				return errors.New("no remote configured; set remote.uri in ~/.arise.yaml or ARISE_MONGO_URI")
			}

			client, err := remote.Connect(ctx, cfg.Remote.URI)
			if err != nil {
				return err
			}
			defer func() { _ = client.Disconnect(ctx) }()
			store := remote.NewStore(client, cfg.Remote.Database)

			out := cmd.OutOrStdout()

			prefs, err := store.LoadPreferences(ctx, cfg.UserID)
			if err != nil {
				return err
			}
			if prefs != nil {
				prefs.Key = storage.MainUserKey
				if err := svc.PrefsRepo().Save(ctx, prefs); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Muted.Render("Preferences updated."))
			}

			progress, err := store.LoadProgress(ctx, cfg.UserID)
			if err != nil {
				return err
			}
			if progress != nil {
				progress.Key = storage.MainUserKey
				if err := svc.ProgressRepo().Upsert(ctx, progress); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Muted.Render("Progress updated."))
			}

			if prefs == nil && progress == nil {
				fmt.Fprintln(out, ui.Muted.Render("Nothing stored remotely yet."))
				return nil
			}
			fmt.Fprintln(out, ui.Good.Render(ui.IconCloud+" Pulled snapshots for "+cfg.UserID))
			return nil
		},
	}
}
