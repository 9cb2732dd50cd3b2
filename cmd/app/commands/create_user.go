package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	authDTO "github.com/allisson/notes/internal/auth/http/dto"
	authUseCase "github.com/allisson/notes/internal/auth/usecase"
)

// RunCreateUser registers a user from the command line. The password is read
// from io.Reader when it is not passed as an argument, so it stays out of shell history.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
	username string,
	password string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new user", slog.String("username", username))

	if password == "" {
		var err error
		password, err = promptLine(io, "Enter password: ")
		if err != nil {
			return fmt.Errorf("failed to get password: %w", err)
		}
	}

	req := &authDTO.SignUpRequest{Username: username, Password: password}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}

	identity, err := authUseCase.SignUp(ctx, req.ToDomain())
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	response := authDTO.MapIdentityToResponse(identity)
	if format == "json" {
		if err := outputJSON(response, io.Writer); err != nil {
			return err
		}
	} else {
		outputUserText(response, io.Writer)
	}

	logger.Info("user created successfully",
		slog.Int64("user_id", identity.ID),
		slog.String("username", identity.Username),
	)

	return nil
}

// outputUserText outputs the created user in human-readable text format.
func outputUserText(response authDTO.IdentityResponse, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nUser created successfully!")
	_, _ = fmt.Fprintf(writer, "User ID: %d\n", response.ID)
	_, _ = fmt.Fprintf(writer, "Username: %s\n", response.Username)
	_, _ = fmt.Fprintf(writer, "Created At: %s\n", response.CreatedAt.Format(time.RFC3339))
}
