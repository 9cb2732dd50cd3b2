package app

import (
	"fmt"
	"sync"

	"github.com/allisson/notes/internal/database"
	noteHTTP "github.com/allisson/notes/internal/note/http"
	noteRepository "github.com/allisson/notes/internal/note/repository"
	noteUseCase "github.com/allisson/notes/internal/note/usecase"
)

type noteComponents struct {
	noteRepository noteUseCase.NoteRepository
	noteUseCase    noteUseCase.NoteUseCase
	noteHandler    *noteHTTP.NoteHandler

	noteRepositoryInit sync.Once
	noteUseCaseInit    sync.Once
	noteHandlerInit    sync.Once
}

// NoteRepository returns the note repository based on database driver.
func (c *Container) NoteRepository() (noteUseCase.NoteRepository, error) {
	err := c.lazy(&c.noteRepositoryInit, "noteRepository", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for note repository: %w", err)
		}
		switch c.config.DBDriver {
		case database.DriverMySQL:
			c.noteRepository = noteRepository.NewMySQLNoteRepository(db)
		case database.DriverPostgres:
			c.noteRepository = noteRepository.NewPostgreSQLNoteRepository(db)
		default:
			return fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.noteRepository, nil
}

// NoteUseCase returns the note use case, wrapped with business metrics.
func (c *Container) NoteUseCase() (noteUseCase.NoteUseCase, error) {
	err := c.lazy(&c.noteUseCaseInit, "noteUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for note use case: %w", err)
		}
		repo, err := c.NoteRepository()
		if err != nil {
			return err
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return err
		}
		c.noteUseCase = noteUseCase.NewNoteUseCaseWithMetrics(
			noteUseCase.NewNoteUseCase(txManager, repo),
			businessMetrics,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.noteUseCase, nil
}

// NoteHandler returns the HTTP handler for note operations.
func (c *Container) NoteHandler() (*noteHTTP.NoteHandler, error) {
	err := c.lazy(&c.noteHandlerInit, "noteHandler", func() error {
		useCase, err := c.NoteUseCase()
		if err != nil {
			return err
		}
		c.noteHandler = noteHTTP.NewNoteHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.noteHandler, nil
}
