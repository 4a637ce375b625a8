package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jhrdina/pocketmesh-site/internal/website"
)

// PinnedUsers returns the users flagged as pinned, in configuration order.
func PinnedUsers(users []website.User) []website.User {
	var pinned []website.User
	for _, u := range users {
		if u.Pinned {
			pinned = append(pinned, u)
		}
	}
	return pinned
}

// RenderShowcase generates the "who is using this" section. With no users
// there is nothing to show and it returns nil.
func RenderShowcase(cfg website.SiteConfig, users []website.User) g.Node {
	if len(users) == 0 {
		return nil
	}
	return Div(Class("productShowcaseSection paddingBottom"),
		H2(g.Text("Who is Using This?")),
		P(g.Text("This project is used by all these people")),
		Div(Class("showcase"),
			g.Map(users, func(u website.User) g.Node {
				return A(Href(u.InfoLink), Target("_blank"), Rel("noopener noreferrer"),
					Img(Src(cfg.AssetURL(trimSlash(u.Image))), Alt(u.Caption), Title(u.Caption)),
				)
			}),
		),
	)
}

// trimSlash drops one leading "/" so AssetURL does not double it.
func trimSlash(path string) string {
	if len(path) > 0 && path[0] == '/' {
		return path[1:]
	}
	return path
}
