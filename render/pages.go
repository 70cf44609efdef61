package render

import (
	"boogie/content"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// HeroSection renders a page hero: background image if present, headline
// falling back to the page title, optional subheadline and CTA.
func HeroSection(hero *content.Hero, pageTitle string) g.Node {
	if hero == nil {
		return nil
	}
	headline := hero.Headline
	if headline == "" {
		headline = pageTitle
	}
	var background g.Node
	if url := hero.HeroImage.URL(); url != "" {
		background = Div(Class("hero-background"),
			Img(Src(url), Alt(headline)),
			Div(Class("hero-shade")),
		)
	}
	var cta g.Node
	if hero.CTAButton != nil && hero.CTAButton.Text != "" {
		link := hero.CTAButton.Link
		if link == "" {
			link = "#"
		}
		cta = A(Href(link), Class("btn btn-primary"), g.Text(hero.CTAButton.Text))
	}
	return Section(Class("hero"),
		background,
		Div(Class("hero-content"),
			H1(g.Text(headline)),
			g.If(hero.Subheadline != "", P(Class("hero-subheadline"), g.Text(hero.Subheadline))),
			cta,
		),
	)
}

// EmptyState is shown when a page exists but has neither content nor
// sections. A blank body would look broken; this tells the visitor (and the
// author previewing) what is going on.
func EmptyState() g.Node {
	return Div(Class("empty-state"),
		P(g.Text("This page is ready for content.")),
	)
}

// NotFoundMessage is the body of the 404 page.
func NotFoundMessage() g.Node {
	return Div(Class("not-found"),
		H1(g.Text("Page not found")),
		P(g.Text("The page you're looking for doesn't exist or has been moved.")),
		P(A(Href("/"), g.Text("Back to the homepage"))),
	)
}

// ArtistCard is the list/home representation of an artist.
func ArtistCard(a content.Artist) g.Node {
	var image g.Node
	if url := a.ProfileImage.URL(); url != "" {
		image = Img(Src(url), Alt(a.DisplayName()))
	} else {
		image = Div(Class("image-placeholder"), g.Text("No image"))
	}
	return A(Href("/artists/"+a.Slug.Current), Class("artist-card"),
		Div(Class("artist-card-image"), image),
		Div(Class("artist-card-body"),
			H3(g.Text(a.DisplayName())),
			g.If(a.Role != "", P(Class("artist-role"), g.Text(a.Role))),
			g.If(a.ShortBio != "", P(Class("artist-bio"), g.Text(a.ShortBio))),
		),
	)
}

// PostCard is the blog index representation of a post.
func PostCard(p content.Post) g.Node {
	var image g.Node
	if url := p.MainImage.URL(); url != "" {
		image = Div(Class("post-card-image"), Img(Src(url), Alt(p.Title)))
	}
	var byline g.Node
	if p.Author != nil {
		byline = Span(Class("post-author"), g.Text(p.Author.Name))
	}
	return Article(Class("post-card"),
		image,
		H3(A(Href("/blog/"+p.Slug.Current), g.Text(p.Title))),
		Div(Class("post-meta"),
			Span(Class("post-date"), g.Text(p.PublishedAt.Format("January 2, 2006"))),
			byline,
		),
		g.If(p.Excerpt != "", P(Class("post-excerpt"), g.Text(p.Excerpt))),
		CategoryChips(p.Categories),
	)
}

// CategoryChips renders category labels, tinted with the category color
// when one is set. Nothing renders for an empty list.
func CategoryChips(categories []content.Category) g.Node {
	if len(categories) == 0 {
		return nil
	}
	return Div(Class("category-chips"),
		g.Group(g.Map(categories, func(c content.Category) g.Node {
			chip := []g.Node{Class("chip"), g.Text(c.Title)}
			if c.Color != nil && c.Color.Hex != "" {
				chip = append(chip, Style("background-color: "+c.Color.Hex))
			}
			return Span(chip...)
		})),
	)
}

// Byline renders the post author attribution, or nothing when the post has
// no author.
func Byline(author *content.Author) g.Node {
	if author == nil {
		return nil
	}
	var image g.Node
	if url := author.Image.URL(); url != "" {
		image = Img(Class("byline-image"), Src(url), Alt(author.Name))
	}
	return Div(Class("byline"),
		image,
		Span(g.Text("By "+author.Name)),
	)
}

// MusicSampleEmbed renders one embedded player.
func MusicSampleEmbed(sample content.MusicSample) g.Node {
	if sample.EmbedURL == "" {
		return nil
	}
	return Div(Class("music-sample"),
		g.If(sample.Title != "", H3(g.Text(sample.Title))),
		IFrame(Src(sample.EmbedURL), Loading("lazy"),
			g.Attr("allow", "autoplay; encrypted-media"),
		),
		g.If(sample.Description != "", P(Class("sample-description"), g.Text(sample.Description))),
	)
}

// ArtistGallery renders the artist photo gallery grid.
func ArtistGallery(images []content.Image) g.Node {
	if len(images) == 0 {
		return nil
	}
	return Section(Class("artist-gallery"),
		H2(g.Text("Gallery")),
		Div(Class("gallery-items"),
			g.Group(g.Map(images, galleryImage)),
		),
	)
}

// ContactForm is the client side of the contact endpoint. Required fields
// are enforced in the browser before anything is posted; the server
// validates again.
func ContactForm() g.Node {
	return Form(Class("contact-form"), ID("contact-form"),
		Div(Class("form-row"),
			Div(Class("form-field"),
				Label(For("firstName"), g.Text("First name")),
				Input(Type("text"), ID("firstName"), Name("firstName"), Required()),
			),
			Div(Class("form-field"),
				Label(For("lastName"), g.Text("Last name")),
				Input(Type("text"), ID("lastName"), Name("lastName"), Required()),
			),
		),
		Div(Class("form-field"),
			Label(For("email"), g.Text("Email")),
			Input(Type("email"), ID("email"), Name("email"), Required()),
		),
		Div(Class("form-field"),
			Label(For("company"), g.Text("Company")),
			Input(Type("text"), ID("company"), Name("company")),
		),
		Div(Class("form-field"),
			Label(For("projectType"), g.Text("Project type")),
			Select(ID("projectType"), Name("projectType"),
				Option(Value("production"), g.Text("Music Production")),
				Option(Value("management"), g.Text("Artist Management")),
				Option(Value("collaboration"), g.Text("Collaboration")),
				Option(Value("other"), g.Text("Other")),
			),
		),
		Div(Class("form-field"),
			Label(For("message"), g.Text("Message")),
			Textarea(ID("message"), Name("message"), Rows("6"), Required()),
		),
		Button(Type("submit"), Class("btn btn-primary"), g.Text("Send message")),
		Div(ID("contact-result")),
		contactFormScript(),
	)
}

// contactFormScript posts the form as JSON and shows the acknowledgment,
// keeping a submit-in-flight flag so double clicks don't double-send.
func contactFormScript() g.Node {
	return g.Raw(`
		<script>
			(function () {
				var form = document.getElementById('contact-form');
				var result = document.getElementById('contact-result');
				var inFlight = false;
				form.addEventListener('submit', function (e) {
					e.preventDefault();
					if (inFlight) return;
					inFlight = true;
					var data = Object.fromEntries(new FormData(form).entries());
					fetch('/api/contact', {
						method: 'POST',
						headers: { 'Content-Type': 'application/json' },
						body: JSON.stringify(data)
					}).then(function (resp) { return resp.json(); })
						.then(function (body) {
							result.textContent = body.message;
							if (body.success) form.reset();
						})
						.catch(function () {
							result.textContent = 'Failed to send message. Please try again.';
						})
						.finally(function () { inFlight = false; });
				});
			})()
		</script>
	`)
}
