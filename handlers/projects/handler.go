package projects

import (
	"errors"
	"net/http"

	"ekoclub-backend/db"
	"ekoclub-backend/models"
	"ekoclub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary List projects
// @Description List projects, optionally filtered by status or category
// @Tags projects
// @Produce json
// @Param status query string false "Status filter (ongoing, completed)"
// @Param category query string false "Category filter"
// @Success 200 {array} models.Project
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /projects [get]
func GetAllProjects(c *gin.Context) {
	var projects []models.Project

	query := db.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// @Summary Get one project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} map[string]interface{} "error: Project not found"
// @Router /projects/{id} [get]
func GetProjectByID(c *gin.Context) {
	var project models.Project

	if err := db.DB.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, project)
}

// @Summary Create a project
// @Description Create a project (admin)
// @Tags projects
// @Accept json
// @Produce json
// @Param project body models.ProjectCreate true "Project information"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message: Project created successfully, id: project ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Router /projects [post]
func CreateProject(c *gin.Context) {
	var input models.ProjectCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	project := models.Project{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		GoalAmount:  input.GoalAmount,
		Status:      models.ProjectOngoing,
	}

	result := db.DB.Create(&project)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"id":      project.ID,
	})
}

// @Summary Update a project
// @Description Update a project (admin)
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body models.Project true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Project updated successfully"
// @Failure 404 {object} map[string]interface{} "error: Project not found"
// @Router /projects/{id} [put]
func UpdateProject(c *gin.Context) {
	var input models.Project

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var project models.Project
	if err := db.DB.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := db.DB.Model(&project).Updates(map[string]interface{}{
		"title":         input.Title,
		"description":   input.Description,
		"category":      input.Category,
		"goal_amount":   input.GoalAmount,
		"raised_amount": input.RaisedAmount,
		"status":        input.Status,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully"})
}

// @Summary Delete a project
// @Description Delete a project (admin)
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Project deleted successfully"
// @Failure 404 {object} map[string]interface{} "error: Project not found"
// @Router /projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	var project models.Project
	if err := db.DB.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := db.DB.Delete(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// @Summary Upload a project image
// @Description Upload the project image to Cloudinary and store its URL (admin)
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project ID"
// @Param image formData file true "Image file"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Image uploaded successfully, imageUrl: URL"
// @Failure 400 {object} map[string]interface{} "error: Invalid file"
// @Failure 404 {object} map[string]interface{} "error: Project not found"
// @Router /projects/{id}/image [post]
func UploadProjectImage(c *gin.Context) {
	var project models.Project
	if err := db.DB.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}

	imageURL, err := utils.UploadImage(file, "projects")
	if err != nil {
		utils.LogError(err, "Image upload failed in UploadProjectImage")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.DB.Model(&project).Update("image_url", imageURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Image uploaded successfully",
		"imageUrl": imageURL,
	})
}
