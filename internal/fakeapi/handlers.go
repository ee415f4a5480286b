package fakeapi

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/fridgechef/internal/types"
)

func (s *Server) authResponse(c *gin.Context, status int, user types.UserProfile) {
	token, err := s.issueToken(user.ID)
	if err != nil {
		s.logger.Error("failed to issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(status, types.AuthResponse{Token: token, ID: user.ID, User: &user})
}

func (s *Server) login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	user, err := s.store.authenticate(req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	s.authResponse(c, http.StatusOK, user)
}

func (s *Server) signup(c *gin.Context) {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := s.store.createUser(req.FullName, req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	s.logger.Info("user registered", zap.String("user_id", user.ID))
	s.authResponse(c, http.StatusCreated, user)
}

func (s *Server) listRecipes(c *gin.Context) {
	page, limit := pageParams(c)
	c.JSON(http.StatusOK, types.RecipeList{Recipes: s.store.listRecipes(page, limit)})
}

func (s *Server) searchRecipes(c *gin.Context) {
	term := strings.TrimSpace(c.Query("searchTerm"))
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "searchTerm is required"})
		return
	}
	c.JSON(http.StatusOK, types.RecipeList{Recipes: s.store.searchText(term)})
}

func (s *Server) recipesByIngredients(c *gin.Context) {
	var req types.IngredientSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredients are required"})
		return
	}
	c.JSON(http.StatusOK, types.RecipeList{Recipes: s.store.byIngredients(req.Ingredients)})
}

func (s *Server) getRecipe(c *gin.Context) {
	recipe, err := s.store.recipe(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func bindRecipeInput(c *gin.Context) (types.RecipeInput, bool) {
	var in types.RecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return in, false
	}
	if strings.TrimSpace(in.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return in, false
	}
	return in, true
}

func (s *Server) createRecipe(c *gin.Context) {
	in, ok := bindRecipeInput(c)
	if !ok {
		return
	}
	recipe, err := s.store.createRecipe(c.GetString(userIDKey), in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (s *Server) updateRecipe(c *gin.Context) {
	in, ok := bindRecipeInput(c)
	if !ok {
		return
	}
	recipe, err := s.store.updateRecipe(c.GetString(userIDKey), c.Param("id"), in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (s *Server) deleteRecipe(c *gin.Context) {
	id := c.Param("id")
	if err := s.store.deleteRecipe(c.GetString(userIDKey), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted", "id": id})
}

func (s *Server) rateRecipe(c *gin.Context) {
	var req types.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating is required"})
		return
	}
	recipe, err := s.store.rate(c.GetString(userIDKey), c.Param("id"), req.Rating)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (s *Server) listUsers(c *gin.Context) {
	page, limit := pageParams(c)
	c.JSON(http.StatusOK, types.UserList{Users: s.store.listUsers(page, limit)})
}

func (s *Server) getUser(c *gin.Context) {
	user, err := s.store.user(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) updateUser(c *gin.Context) {
	id := c.Param("id")
	if id != c.GetString(userIDKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot update another user's profile"})
		return
	}
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	user, err := s.store.updateUser(id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) followUser(c *gin.Context) {
	s.setFollow(c, true)
}

func (s *Server) unfollowUser(c *gin.Context) {
	s.setFollow(c, false)
}

func (s *Server) setFollow(c *gin.Context, follow bool) {
	resp, err := s.store.setFollow(c.GetString(userIDKey), c.Param("id"), follow)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// uploadImage echoes the photo back as a data URI and derives the detected
// ingredients from the file name
func (s *Server) uploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	contentType := http.DetectContentType(data)
	c.JSON(http.StatusOK, types.FridgeScan{
		Image:       fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)),
		Ingredients: detectIngredients(fh.Filename),
	})
}

func detectIngredients(filename string) []string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	fields := strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, strings.ToLower(f))
	}
	return out
}
