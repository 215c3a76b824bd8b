package main

import (
	"os"
	"path/filepath"

	"github.com/alexanderramin/workclock/internal/cli"
	"github.com/alexanderramin/workclock/internal/db"
	"github.com/alexanderramin/workclock/internal/repository"
	"github.com/alexanderramin/workclock/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	repo := repository.NewWorkdayRepository(store)
	app := &cli.App{
		Workdays: service.NewWorkdayService(repo),
	}

	return cli.NewRootCmd(app).Execute()
}

// openStore picks a persistence backend from WORKCLOCK_STORE
// (sqlite|file|memory, default sqlite). Data lives under ~/.workclock
// unless WORKCLOCK_DB points elsewhere.
func openStore() (repository.WorkdayPersistence, func(), error) {
	noop := func() {}

	switch kind := os.Getenv("WORKCLOCK_STORE"); kind {
	case "memory":
		return repository.NewInMemoryPersistence(), noop, nil

	case "file":
		path, err := dataPath("workdays.txt")
		if err != nil {
			return nil, nil, err
		}
		return repository.NewFilePersistence(path), noop, nil

	case "", "sqlite":
		path, err := dataPath("workclock.db")
		if err != nil {
			return nil, nil, err
		}
		database, err := db.OpenDB(path)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSQLitePersistence(database), func() { database.Close() }, nil

	default:
		log.Warn("unknown WORKCLOCK_STORE, falling back to sqlite", "store", kind)
		path, err := dataPath("workclock.db")
		if err != nil {
			return nil, nil, err
		}
		database, err := db.OpenDB(path)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSQLitePersistence(database), func() { database.Close() }, nil
	}
}

func dataPath(name string) (string, error) {
	if path := os.Getenv("WORKCLOCK_DB"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(home, ".workclock", name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	return path, nil
}
