package main

import (
	"chat-app/domain/chat"
	"chat-app/infrastructure/storage"
	"chat-app/runtime/workers"
	"chat-app/store"
	"fmt"
	"io"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. The caller closes ins once Execute returns.
func newRootCmd(ins *inspector) *cobra.Command {
	cfg, cfgErr := LoadConfig()
	var dbPath string

	root := &cobra.Command{
		Use:          "inspect",
		Short:        "Print the persisted chat snapshots as tables",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return fmt.Errorf("config error: %w", cfgErr)
			}
			ins.out = cmd.OutOrStdout()
			return ins.open(dbPath)
		},
	}
	root.PersistentFlags().StringVar(&dbPath, "db", cfg.BadgerFilepath, "path to the badger directory")
	root.PersistentFlags().BoolVar(&ins.colours, "colours", cfg.Colours, "colorize table titles")

	root.AddCommand(usersCmd(ins), chatsCmd(ins), countersCmd(ins), keysCmd(ins), messagesCmd(ins))
	return root
}

func usersCmd(ins *inspector) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List persisted profiles with their unread totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ins.renderUsers()
			return nil
		},
	}
}

func chatsCmd(ins *inspector) *cobra.Command {
	return &cobra.Command{
		Use:   "chats",
		Short: "List chats with their participants and message counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ins.renderChats()
			return nil
		},
	}
}

func countersCmd(ins *inspector) *cobra.Command {
	return &cobra.Command{
		Use:   "counters [login]",
		Short: "List unread counters, optionally for one login",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			login := ""
			if len(args) == 1 {
				login = args[0]
			}
			ins.renderCounters(login)
			return nil
		},
	}
}

func keysCmd(ins *inspector) *cobra.Command {
	var reveal bool
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List chat keys, masked unless --reveal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ins.renderKeys(reveal)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print full keys")
	return cmd
}

func messagesCmd(ins *inspector) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "messages <chatId>",
		Short: "List the messages of a chat, decrypted unless --raw",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ins.renderMessages(chat.ChatID(args[0]), raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the sealed text instead of the plaintext")
	return cmd
}

type inspector struct {
	db      *badger.DB
	tables  store.Tables
	out     io.Writer
	colours bool
}

// open reads both snapshots without taking the lock of a running server.
func (i *inspector) open(path string) error {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("error while opening Badger: %w", err)
	}
	i.db = db

	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	i.tables = store.NewTables()
	return workers.LoadSnapshots(log, storage.NewSnapshotRepository(db, log), i.tables)
}

func (i *inspector) close() error {
	if i.db == nil {
		return nil
	}
	err := i.db.Close()
	i.db = nil
	return err
}
