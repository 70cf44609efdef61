package render

import (
	"fmt"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

type LayoutProps struct {
	Site        Site
	Title       string
	Description string
	// Extra head nodes, typically per-page JSON-LD schemas.
	Head []g.Node
}

func NavbarComponent(site Site) g.Node {
	return Nav(Class("nav"),
		Div(Class("nav-left"),
			Div(Class("brand"), A(Href("/"), g.Text(site.Name))),
		),
		Div(Class("nav-links nav-right"),
			A(Href("/artists"), g.Text("Artists")),
			A(Href("/blog"), g.Text("Blog")),
			A(Href("/about"), g.Text("About")),
			A(Href("/contact"), g.Text("Contact")),
		),
	)
}

func FooterComponent(site Site) g.Node {
	return Footer(Class("footer"),
		P(Class("footer-copy"),
			g.Textf("© %s", site.Name),
		),
		P(Class("footer-links"),
			A(Href("/privacy-policy"), g.Text("Privacy Policy")),
			A(Href("/contact"), g.Text("Contact")),
		),
	)
}

// CookieBannerComponent is the consent banner. The accepted flag lives in
// browser local storage; the server never sees it.
func CookieBannerComponent() g.Node {
	return g.Raw(`
		<div id="cookie-banner" class="cookie-banner" style="display: none;">
			<p>
				This website uses cookies to understand how visitors use the site.
				You can accept or decline; the site works either way.
			</p>
			<div class="cookie-actions">
				<button id="accept-cookies">Accept</button>
				<button id="decline-cookies">Decline</button>
			</div>
		</div>
		<script>
			(function () {
				var consent = localStorage.getItem('cookieConsent');
				if (!consent) {
					document.getElementById('cookie-banner').style.display = 'block';
				}
				document.getElementById('accept-cookies').onclick = function () {
					localStorage.setItem('cookieConsent', 'accepted');
					document.getElementById('cookie-banner').style.display = 'none';
				}
				document.getElementById('decline-cookies').onclick = function () {
					localStorage.setItem('cookieConsent', 'declined');
					document.getElementById('cookie-banner').style.display = 'none';
				}
			})()
		</script>
	`)
}

// analyticsSnippet emits the measurement script only when an ID is
// configured, so development builds stay clean.
func analyticsSnippet(site Site) g.Node {
	if site.AnalyticsID == "" {
		return nil
	}
	return g.Group([]g.Node{
		Script(Async(), Src("https://www.googletagmanager.com/gtag/js?id="+site.AnalyticsID)),
		Script(g.Raw(fmt.Sprintf(`
			window.dataLayer = window.dataLayer || [];
			function gtag(){dataLayer.push(arguments);}
			gtag('js', new Date());
			gtag('config', '%s');
		`, site.AnalyticsID))),
	})
}

func Layout(props LayoutProps, children ...g.Node) g.Node {
	title := props.Site.Name
	if props.Title != "" {
		title = props.Title + " | " + props.Site.Name
	}
	head := []g.Node{
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		g.If(props.Description != "", Meta(Name("description"), Content(props.Description))),
		Link(Rel("stylesheet"), Href("/assets/css/main.css")),
		TitleEl(g.Text(title)),
		props.Site.OrganizationSchema(),
		props.Site.WebsiteSchema(),
		analyticsSnippet(props.Site),
	}
	head = append(head, props.Head...)

	return Doctype(
		HTML(
			Lang("en"),
			Head(head...),
			Body(
				Div(Class("container"),
					NavbarComponent(props.Site),
					Main(
						g.Group(children),
					),
				),
				FooterComponent(props.Site),
				CookieBannerComponent(),
			),
		),
	)
}
