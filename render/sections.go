package render

import (
	"boogie/content"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// Section dispatches on the section's _type. The section set is closed;
// a type we don't know renders nothing so a newer studio schema doesn't
// break older deployments.
func (r Renderer) Section(s content.Section) g.Node {
	switch s.Type {
	case "textSection":
		return r.textSection(s)
	case "imageGallery":
		return r.imageGallery(s)
	case "teamSection":
		return r.teamSection(s)
	case "contactSection":
		return r.contactSection(s)
	case "servicesSection":
		return r.servicesSection(s)
	default:
		return nil
	}
}

// Sections renders a page's ordered section list.
func (r Renderer) Sections(sections []content.Section) g.Node {
	return fragment(g.Map(sections, r.Section))
}

func (r Renderer) textSection(s content.Section) g.Node {
	return Section(Class("text-section"),
		g.If(s.Title != "", H2(g.Text(s.Title))),
		Div(Class("prose"), r.RichText(s.Content)),
	)
}

func (r Renderer) imageGallery(s content.Section) g.Node {
	layout := s.Layout
	if layout == "" {
		layout = "grid"
	}
	return Section(Class("image-gallery gallery-"+layout),
		g.If(s.Title != "", H2(g.Text(s.Title))),
		Div(Class("gallery-items"),
			g.Group(g.Map(s.Images, func(img content.Image) g.Node {
				return galleryImage(img)
			})),
		),
	)
}

func galleryImage(img content.Image) g.Node {
	if img.URL() == "" {
		return Figure(Class("gallery-item"),
			Div(Class("image-placeholder"), g.Text("No image")),
		)
	}
	return Figure(Class("gallery-item"),
		Img(Src(img.URL()), Alt(img.Alt)),
		g.If(img.Caption != "", FigCaption(g.Text(img.Caption))),
	)
}

func (r Renderer) teamSection(s content.Section) g.Node {
	return Section(Class("team-section"),
		g.If(s.Title != "", H2(g.Text(s.Title))),
		Div(Class("team-grid"),
			g.Group(g.Map(s.Members, teamMember)),
		),
	)
}

func teamMember(m content.TeamMember) g.Node {
	return Div(Class("team-member"),
		itemImage(m.Image),
		H3(g.Text(m.Name)),
		g.If(m.Role != "", P(Class("member-role"), g.Text(m.Role))),
		g.If(m.Bio != "", P(Class("member-bio"), g.Text(m.Bio))),
		SocialLinks(m.SocialLinks),
	)
}

func (r Renderer) contactSection(s content.Section) g.Node {
	var info g.Node
	if ci := s.ContactInfo; ci != nil {
		info = Div(Class("contact-info"),
			g.If(ci.Email != "", P(A(Href("mailto:"+ci.Email), g.Text(ci.Email)))),
			g.If(ci.Phone != "", P(g.Text(ci.Phone))),
			g.If(ci.Address != "", P(g.Text(ci.Address))),
		)
	}
	return Section(Class("contact-section"),
		g.If(s.Title != "", H2(g.Text(s.Title))),
		info,
		g.If(s.ShowContactForm, ContactForm()),
	)
}

func (r Renderer) servicesSection(s content.Section) g.Node {
	return Section(Class("services-section"),
		g.If(s.Title != "", H2(g.Text(s.Title))),
		Div(Class("services-grid"),
			g.Group(g.Map(s.Services, service)),
		),
	)
}

func service(sv content.Service) g.Node {
	return Div(Class("service"),
		itemImage(sv.Icon),
		H3(g.Text(sv.Name)),
		g.If(sv.Description != "", P(g.Text(sv.Description))),
		g.If(len(sv.Features) > 0,
			Ul(Class("service-features"),
				g.Group(g.Map(sv.Features, func(f string) g.Node { return Li(g.Text(f)) })),
			),
		),
	)
}

// SocialLinks renders whatever links are filled in, in schema order.
func SocialLinks(links content.SocialLinks) g.Node {
	type entry struct {
		label string
		url   string
	}
	entries := []entry{
		{"Website", links.Website},
		{"Spotify", links.Spotify},
		{"SoundCloud", links.Soundcloud},
		{"Bandcamp", links.Bandcamp},
		{"YouTube", links.Youtube},
		{"Instagram", links.Instagram},
		{"Twitter", links.Twitter},
		{"Facebook", links.Facebook},
		{"LinkedIn", links.Linkedin},
	}
	var out []g.Node
	for _, e := range entries {
		if e.url == "" {
			continue
		}
		out = append(out, A(Href(e.url), Target("_blank"), Rel("noopener noreferrer"), g.Text(e.label)))
	}
	if len(out) == 0 {
		return nil
	}
	return Div(Class("social-links"), g.Group(out))
}
