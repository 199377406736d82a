package cli

import (
	"context"

	"github.com/dmitrijs2005/useraccounts/internal/accounts"
)

// Create runs one creation attempt. Password feedback is printed after each
// password entry; it does not stop the attempt.
func (a *App) Create(ctx context.Context) error {
	form := a.service.NewCreateUserForm()
	form.OnPasswordMatch(a.renderPasswordState)

	name, err := a.prompt("Enter user name")
	if err != nil {
		return err
	}
	form.SetUserName(name)
	if name != "" && !form.IsUserNameValid() {
		a.println("User name should be 3 to 35 letters or digits.")
	}

	pw, err := a.promptSecret("Enter password")
	if err != nil {
		return err
	}
	form.SetPassword(pw)

	pw, err = a.promptSecret("Repeat password")
	if err != nil {
		return err
	}
	form.SetPasswordVerify(pw)

	u, err := form.CreateUser(ctx)
	if err != nil {
		return a.fail(ctx, accounts.Message(err), err)
	}

	a.printf("Created %s (%s)\n", u.DisplayName(), RefOf(u))
	a.logger.Info(ctx, "user created", "id", u.ID)
	return nil
}

func (a *App) renderPasswordState(st accounts.PasswordMatchState) {
	if err := st.Err(); err != nil {
		a.println("  !", accounts.Message(err))
		return
	}
	a.println("  ok")
}
