package handler

import (
	"errors"
	"net/http"

	"kedai/internal/models"
	"kedai/internal/service"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

type AboutUsHandler struct {
	svc *service.AboutUsService
}

func NewAboutUsHandler(svc *service.AboutUsService) *AboutUsHandler {
	return &AboutUsHandler{svc: svc}
}

type aboutUsImagesRequest struct {
	Image1          string   `json:"image1"`
	Image2          string   `json:"image2"`
	Image3          string   `json:"image3"`
	Image4          string   `json:"image4"`
	LingkunganKedai []string `json:"lingkunganKedai"`
	SpotTempatDuduk []string `json:"spotTempatDuduk"`
}

// aboutUsRequest is the full replacement document. Counts are pointers so a
// missing value is told apart from 0.
type aboutUsRequest struct {
	Title              string               `json:"title" binding:"required"`
	Subtitle           string               `json:"subtitle" binding:"required"`
	Description        string               `json:"description" binding:"required"`
	SecondDescription  string               `json:"secondDescription" binding:"required"`
	CompanyDescription string               `json:"companyDescription"`
	YearsOfExperience  *int                 `json:"yearsOfExperience" binding:"required,min=0"`
	MasterChefs        *int                 `json:"masterChefs" binding:"required,min=0"`
	Images             aboutUsImagesRequest `json:"images"`
}

func (r *aboutUsRequest) model() *models.AboutUs {
	a := &models.AboutUs{
		Title:              r.Title,
		Subtitle:           r.Subtitle,
		Description:        r.Description,
		SecondDescription:  r.SecondDescription,
		CompanyDescription: r.CompanyDescription,
		YearsOfExperience:  *r.YearsOfExperience,
		MasterChefs:        *r.MasterChefs,
		Images: models.AboutUsImages{
			Image1:          r.Images.Image1,
			Image2:          r.Images.Image2,
			Image3:          r.Images.Image3,
			Image4:          r.Images.Image4,
			LingkunganKedai: datatypes.JSONSlice[string](r.Images.LingkunganKedai),
			SpotTempatDuduk: datatypes.JSONSlice[string](r.Images.SpotTempatDuduk),
		},
	}
	a.Images.Normalize()
	return a
}

var bindingMessages = map[string]map[string]string{
	"Title":             {"required": "Title is required"},
	"Subtitle":          {"required": "Subtitle is required"},
	"Description":       {"required": "Description is required"},
	"SecondDescription": {"required": "Second description is required"},
	"YearsOfExperience": {"required": "Years of experience is required", "min": "Years must be positive"},
	"MasterChefs":       {"required": "Master chefs count is required", "min": "Master chefs must be positive"},
}

// bindingError turns the first failed binding rule into the schema message.
func bindingError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := bindingMessages[fe.Field()][fe.Tag()]; ok {
			return msg
		}
		return fe.Field() + " is invalid"
	}
	return "invalid request body"
}

// Get handles GET /api/about-us.
func (h *AboutUsHandler) Get(c *gin.Context) {
	a, err := h.svc.Fetch(c.Request.Context())
	if err != nil {
		log.Error("get about us", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load about us"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"aboutUs": a})
}

// Put handles PUT /api/about-us: the body replaces the whole document.
func (h *AboutUsHandler) Put(c *gin.Context) {
	var req aboutUsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}
	saved, err := h.svc.Replace(c.Request.Context(), req.model())
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		log.Error("replace about us", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save about us"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"aboutUs": saved})
}
