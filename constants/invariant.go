package constants

import "time"

const (
	APP_NAME   = "Boogie Media"
	PUBLIC_URL = "https://boog.ie"

	// Hard cap on homepage featured artists, regardless of how many
	// documents are flagged featured.
	MAX_FEATURED_ARTISTS = 4

	// How long a CMS snapshot is served before it is fetched again.
	REVALIDATE_WINDOW = 60 * time.Second

	MAX_CONTACT_MESSAGE_LENGTH = 10000
)
