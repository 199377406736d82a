package cli

import "context"

// Edit prompts for every profile field, keeping the current value on an
// empty answer, then saves.
func (a *App) Edit(ctx context.Context, arg string) error {
	id, err := a.resolve(arg, "Enter user id to edit")
	if err != nil {
		return err
	}

	form, err := a.service.NewEditUserForm(ctx, id)
	if err != nil {
		return a.failLoad(ctx, id, err)
	}

	a.printf("Editing %s (empty keeps, '-' clears)\n", form.User().DisplayName())

	p := form.Profile()
	fields := []struct {
		label string
		value *string
	}{
		{"First name", &p.FirstName},
		{"Last name", &p.LastName},
		{"Address 1", &p.Address1},
		{"Address 2", &p.Address2},
		{"City", &p.City},
		{"State", &p.State},
		{"Country", &p.Country},
	}
	for _, f := range fields {
		v, err := GetWithDefault(a.reader, f.label, *f.value, a.out)
		if err != nil {
			return err
		}
		*f.value = v
	}
	form.SetProfile(p)

	saved, err := form.Save(ctx)
	if err != nil {
		return a.fail(ctx, "Failed to save user.", err)
	}

	a.printUser(saved)
	return nil
}

