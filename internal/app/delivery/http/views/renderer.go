package views

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/app/services/core/records"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Page is the data every template receives.
type Page struct {
	Title          string
	Session        *models.Session
	Message        string
	Error          string
	RefreshSeconds int
	LiveFeed       bool
	CSRFField      template.HTML
	Data           interface{}
}

func (p *Page) User() *models.User {
	return p.Session.CurrentUser()
}

func (p *Page) IsLoggedIn() bool {
	return p.Session.CurrentUser() != nil
}

type Renderer struct {
	Log       *zap.Logger
	templates *template.Template
}

// NewRenderer parses the page templates from templatesDir, or from the
// templates compiled into the binary when templatesDir is empty.
func NewRenderer(templatesDir string, logger *zap.Logger) (*Renderer, error) {
	source, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, err
	}
	if templatesDir != "" {
		source = os.DirFS(templatesDir)
	}

	templates, err := template.New("pages").Funcs(funcMap()).ParseFS(source, "*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{Log: logger, templates: templates}, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": records.FormatDateTime,
		"updatedAt":  records.UpdatedAt,
		"join":       strings.Join,
		"lower":      strings.ToLower,
		"roleLabel": func(role models.Role) string {
			return role.Label()
		},
		"displayName": func(user *models.User) string {
			return user.DisplayName("there")
		},
		"percent":     formatPercent,
		"money":       formatFloat,
		"firstMed":    firstMedicationName,
		"refillState": models.LatestRefillStatus,
		"canRefill":   models.CanRequestRefill,
		"roles":       models.Roles,
		"frequencies": models.ReminderFrequencies,
		"deref": func(value *string) string {
			if value == nil {
				return ""
			}
			return *value
		},
		"bar": func(value, max int) int {
			if max <= 0 {
				return 0
			}
			return value * 100 / max
		},
	}
}

func firstMedicationName(prescription models.Prescription) string {
	if name := prescription.FirstMedicationName(); name != "" {
		return name
	}
	return "No medications"
}

// Render executes the named page. The CSRF field and any pending flash
// message are filled in from the request.
func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, page *Page) {
	if page.Session == nil {
		page.Session = utils.GetSessionFromContext(r.Context())
	}
	page.CSRFField = csrf.TemplateField(r)
	if flash := PopFlash(w, r); flash.Message != "" {
		if flash.Kind == FlashError && page.Error == "" {
			page.Error = flash.Message
		}
		if flash.Kind == FlashSuccess && page.Message == "" {
			page.Message = flash.Message
		}
	}

	var buffer bytes.Buffer
	err := v.templates.ExecuteTemplate(&buffer, name, page)
	if err != nil {
		customErr := exceptions.ErrTemplateRender(err, name)
		v.Log.Error("Renderer.Render error executing template",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(r.Context())),
			zap.Error(customErr),
		)
		http.Error(w, constvars.ErrClientSomethingWrongWithApplication, constvars.StatusInternalServerError)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.Header().Set(constvars.HeaderCacheControl, "no-store")
	w.WriteHeader(status)
	buffer.WriteTo(w)
}
