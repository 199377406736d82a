package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/useraccounts/internal/common"
	"github.com/dmitrijs2005/useraccounts/internal/models"
)

const (
	refScheme = "users"
	refHost   = "user"
)

// UserRef addresses one stored user, e.g. users://user?id=3.
type UserRef struct {
	ID int64
}

func RefOf(u *models.User) UserRef {
	return UserRef{ID: u.ID}
}

func (r UserRef) String() string {
	u := url.URL{
		Scheme:   refScheme,
		Host:     refHost,
		RawQuery: url.Values{"id": []string{strconv.FormatInt(r.ID, 10)}}.Encode(),
	}
	return u.String()
}

// ParseUserRef accepts a positive decimal id or a users://user?id=N reference.
func ParseUserRef(s string) (UserRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return UserRef{}, fmt.Errorf("empty user reference: %w", common.ErrorInvalidArgument)
	}

	raw := s
	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return UserRef{}, fmt.Errorf("bad user reference %q: %w", s, common.ErrorInvalidArgument)
		}
		if u.Scheme != refScheme || u.Host != refHost {
			return UserRef{}, fmt.Errorf("not a user reference %q: %w", s, common.ErrorInvalidArgument)
		}
		raw = u.Query().Get("id")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return UserRef{}, fmt.Errorf("bad user id in %q: %w", s, common.ErrorInvalidArgument)
	}
	return UserRef{ID: id}, nil
}
