package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/useraccounts/internal/common"
	"github.com/dmitrijs2005/useraccounts/internal/models"
)

func (a *App) List(ctx context.Context) error {
	all, err := a.service.ListUsers(ctx)
	if err != nil {
		return a.fail(ctx, "Failed to load users.", err)
	}
	if len(all) == 0 {
		a.println("No users.")
		return nil
	}
	for _, u := range all {
		a.printf("%-24s %s\n", u.DisplayName(), u.FullName())
	}
	return nil
}

func (a *App) Show(ctx context.Context, arg string) error {
	id, err := a.resolve(arg, "Enter user id to show")
	if err != nil {
		return err
	}

	u, err := a.service.LoadUser(ctx, id)
	if err != nil {
		return a.failLoad(ctx, id, err)
	}

	a.printUser(u)
	return nil
}

// Delete removes a user and remembers it so the next "undo" can restore it.
// A newer deletion replaces the remembered one.
func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := a.resolve(arg, "Enter user id to delete")
	if err != nil {
		return err
	}

	u, err := a.service.LoadUser(ctx, id)
	if err != nil {
		return a.failLoad(ctx, id, err)
	}

	if err := a.service.DeleteUser(ctx, u); err != nil {
		return a.fail(ctx, "Failed to delete user.", err)
	}

	a.lastDeleted = u
	a.printf("Deleted %s. Type 'undo' to restore.\n", u.DisplayName())
	return nil
}

func (a *App) Undo(ctx context.Context) error {
	if a.lastDeleted == nil {
		a.println("Nothing to undo.")
		return nil
	}

	u, err := a.service.RestoreUser(ctx, a.lastDeleted)
	if err != nil {
		return a.fail(ctx, "Failed to undo delete.", err)
	}

	a.lastDeleted = nil
	a.printf("Restored %s.\n", u.DisplayName())
	return nil
}

func (a *App) failLoad(ctx context.Context, id int64, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		a.printf("User %d not found.\n", id)
		return err
	}
	return a.fail(ctx, "Failed to load user.", err)
}

func (a *App) printUser(u *models.User) {
	a.printf("%s\n", u.DisplayName())
	a.printf("  ref:        %s\n", RefOf(u))
	a.printf("  first name: %s\n", u.FirstName)
	a.printf("  last name:  %s\n", u.LastName)
	a.printf("  address 1:  %s\n", u.Address1)
	a.printf("  address 2:  %s\n", u.Address2)
	a.printf("  city:       %s\n", u.City)
	a.printf("  state:      %s\n", u.State)
	a.printf("  country:    %s\n", u.Country)
}
