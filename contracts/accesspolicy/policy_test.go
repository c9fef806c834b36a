package accesspolicy

import (
	"reflect"
	"testing"
)

func TestCanEditSectionAdminIgnoresGrantTable(t *testing.T) {
	admin := &Actor{ID: "u1", Role: RoleAdmin}
	if !CanEditSection(admin, "euc", nil) {
		t.Fatal("admin must edit any section without grants")
	}
	if !CanEditSection(admin, "hr", GrantSet{"euc": {}}) {
		t.Fatal("admin must edit sections outside the grant set")
	}
}

func TestCanEditSectionRequiresGrantForNonAdmin(t *testing.T) {
	editor := &Actor{ID: "u2", Role: RoleEditor}
	grants := GrantSet{"euc": {}}
	if !CanEditSection(editor, "euc", grants) {
		t.Fatal("granted section must be editable")
	}
	if CanEditSection(editor, "hr", grants) {
		t.Fatal("ungranted section must not be editable")
	}
	if CanEditSection(nil, "euc", grants) {
		t.Fatal("unauthenticated caller must not be editable")
	}
}

func TestCanEditAny(t *testing.T) {
	if CanEditAny(&Actor{ID: "u3", Role: RoleUser}, nil) {
		t.Fatal("user without grants cannot edit anywhere")
	}
	if !CanEditAny(&Actor{ID: "u3", Role: RoleUser}, GrantSet{"hr": {}}) {
		t.Fatal("any grant makes the actor an editor somewhere")
	}
	if !CanEditAny(&Actor{ID: "u1", Role: RoleAdmin}, nil) {
		t.Fatal("admin can always edit")
	}
}

func TestEditableSectionsPreservesRegistryOrder(t *testing.T) {
	order := []string{"euc", "hr", "general"}
	editor := &Actor{ID: "u2", Role: RoleUser}
	got := EditableSections(editor, order, GrantSet{"general": {}, "euc": {}})
	if !reflect.DeepEqual(got, []string{"euc", "general"}) {
		t.Fatalf("unexpected editable sections: %v", got)
	}

	admin := EditableSections(&Actor{ID: "u1", Role: RoleAdmin}, order, nil)
	if !reflect.DeepEqual(admin, order) {
		t.Fatalf("admin must see all sections in order, got %v", admin)
	}
}

func TestCanComment(t *testing.T) {
	if CanComment(nil) {
		t.Fatal("unauthenticated caller cannot comment")
	}
	if CanComment(&Actor{ID: "u4", Role: RoleGuest}) {
		t.Fatal("guests cannot comment")
	}
	if !CanComment(&Actor{ID: "u3", Role: RoleUser}) {
		t.Fatal("regular users can comment")
	}
}

func TestCanViewArticle(t *testing.T) {
	draft := ArticleRef{AuthorID: "u2", SectionID: "euc", Published: false}
	published := ArticleRef{AuthorID: "u2", SectionID: "euc", Published: true}

	if !CanViewArticle(nil, published) {
		t.Fatal("published articles are visible to everyone")
	}
	if CanViewArticle(nil, draft) {
		t.Fatal("drafts are hidden from unauthenticated callers")
	}
	if CanViewArticle(&Actor{ID: "u3", Role: RoleUser}, draft) {
		t.Fatal("drafts are hidden from other users")
	}
	if !CanViewArticle(&Actor{ID: "u2", Role: RoleUser}, draft) {
		t.Fatal("drafts are visible to their author")
	}
	if !CanViewArticle(&Actor{ID: "u1", Role: RoleAdmin}, draft) {
		t.Fatal("drafts are visible to admins")
	}
}

func TestCanModerateComment(t *testing.T) {
	article := ArticleRef{AuthorID: "u1", SectionID: "euc", Published: true}
	moderator := &Actor{ID: "u2", Role: RoleUser}
	if CanModerateComment(moderator, article, nil) {
		t.Fatal("no grant, no moderation")
	}
	if !CanModerateComment(moderator, article, GrantSet{"euc": {}}) {
		t.Fatal("section grant confers moderation")
	}
	if CanModerateComment(&Actor{ID: "u1", Role: RoleUser}, article, nil) {
		t.Fatal("authoring the article must not confer moderation")
	}
	if !CanModerateComment(&Actor{ID: "u9", Role: RoleAdmin}, article, nil) {
		t.Fatal("admins moderate everywhere")
	}
}
