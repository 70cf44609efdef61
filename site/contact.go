package site

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"boogie/constants"
	"boogie/database"
	"boogie/render"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
	"gorm.io/datatypes"
)

// ContactSubmission is the POST /api/contact payload.
type ContactSubmission struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) ContactPage(w http.ResponseWriter, r *http.Request) {
	h.page(w, "Contact", "Get in touch with "+h.site.Name+".", nil,
		H1(g.Text("Contact")),
		P(g.Text("Tell us about your project and we'll get back to you.")),
		render.ContactForm(),
	)
}

// ContactSubmit accepts a submission, logs it, and acknowledges. Persistence
// is optional: without a configured store the log entry is the only record,
// and the acknowledgment reflects receipt, not delivery.
func (h *Handler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	var sub ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeContactResponse(w, http.StatusBadRequest, contactResponse{
			Success: false,
			Message: "We couldn't read your submission. Please try again.",
		})
		return
	}

	if sub.FirstName == "" || sub.LastName == "" || sub.Email == "" || sub.Message == "" {
		writeContactResponse(w, http.StatusBadRequest, contactResponse{
			Success: false,
			Message: "Please fill in your name, email and message.",
		})
		return
	}
	if len(sub.Message) > constants.MAX_CONTACT_MESSAGE_LENGTH {
		writeContactResponse(w, http.StatusBadRequest, contactResponse{
			Success: false,
			Message: "Your message is too long. Please shorten it and try again.",
		})
		return
	}

	log.Printf("Contact form submission: firstName=%q lastName=%q email=%q company=%q projectType=%q message=%q timestamp=%s",
		sub.FirstName, sub.LastName, sub.Email, sub.Company, sub.ProjectType, sub.Message,
		time.Now().UTC().Format(time.RFC3339))

	if h.contactDB != nil {
		payload, err := json.Marshal(sub)
		if err != nil {
			log.Printf("encode contact payload: %v", err)
		}
		record := database.ContactSubmission{
			FirstName:   sub.FirstName,
			LastName:    sub.LastName,
			Email:       sub.Email,
			Company:     sub.Company,
			ProjectType: sub.ProjectType,
			Message:     sub.Message,
			Payload:     datatypes.JSON(payload),
		}
		if result := h.contactDB.Create(&record); result.Error != nil {
			// The log entry above is still the record of receipt.
			log.Printf("store contact submission: %v", result.Error)
		}
	}

	writeContactResponse(w, http.StatusOK, contactResponse{
		Success: true,
		Message: "Thank you! Your message has been received. We'll get back to you soon.",
	})
}

func writeContactResponse(w http.ResponseWriter, status int, resp contactResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("encode contact response: %v", err)
	}
}
