// Package accesspolicy is the shared capability evaluator.
// Every capability decision in the platform is derived here from the caller's
// role and the section editor grants; callers never compare roles inline.
// Decisions are computed per call against current registry state, never cached.
package accesspolicy

// Role is the global capability ceiling of a user.
type Role string

const (
	RoleGuest  Role = "guest"
	RoleUser   Role = "user"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleUser, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// Actor is a snapshot of the calling user. A nil *Actor means the request is
// unauthenticated.
type Actor struct {
	ID     string
	Name   string
	Avatar string
	Role   Role
}

// GrantSet is the set of section ids the actor holds editor grants on.
type GrantSet map[string]struct{}

func (g GrantSet) Has(sectionID string) bool {
	_, ok := g[sectionID]
	return ok
}

// ArticleRef carries the article fields capability decisions depend on.
type ArticleRef struct {
	AuthorID  string
	SectionID string
	Published bool
}

func IsAdmin(actor *Actor) bool {
	return actor != nil && actor.Role == RoleAdmin
}

// CanEditSection reports whether the actor may author and edit articles in
// the section. Admins hold every section implicitly; everyone else needs an
// editor grant for exactly that section.
func CanEditSection(actor *Actor, sectionID string, grants GrantSet) bool {
	if actor == nil {
		return false
	}
	if actor.Role == RoleAdmin {
		return true
	}
	return grants.Has(sectionID)
}

// CanEditAny reports whether the actor may author anywhere at all.
func CanEditAny(actor *Actor, grants GrantSet) bool {
	if actor == nil {
		return false
	}
	return actor.Role == RoleAdmin || len(grants) > 0
}

// EditableSections filters sectionIDs down to those the actor may edit,
// preserving registry order. Admins get the full list.
func EditableSections(actor *Actor, sectionIDs []string, grants GrantSet) []string {
	if actor == nil {
		return nil
	}
	if actor.Role == RoleAdmin {
		return append([]string(nil), sectionIDs...)
	}
	var editable []string
	for _, id := range sectionIDs {
		if grants.Has(id) {
			editable = append(editable, id)
		}
	}
	return editable
}

// CanModerateComment mirrors section editing: admins and holders of a grant
// on the article's section. Authoring the article confers nothing here.
func CanModerateComment(actor *Actor, article ArticleRef, grants GrantSet) bool {
	return CanEditSection(actor, article.SectionID, grants)
}

// CanComment requires an authenticated, non-guest caller. The article's own
// allowComments flag is enforced by the comment service, not here.
func CanComment(actor *Actor) bool {
	return actor != nil && actor.Role != RoleGuest
}

// CanViewArticle: published articles are visible to everyone including
// unauthenticated callers; drafts only to their author and admins.
func CanViewArticle(actor *Actor, article ArticleRef) bool {
	if article.Published {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.Role == RoleAdmin || actor.ID == article.AuthorID
}
