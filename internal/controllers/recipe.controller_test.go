package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"recipebox/internal/controllers"
	"recipebox/internal/domain"
	"recipebox/internal/mocks"
	"recipebox/internal/models"
	"recipebox/internal/repository"
	"recipebox/internal/services"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func addAuthMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

type recipeMocks struct {
	recipes     *mocks.MockRecipeRepository
	tags        *mocks.MockTagRepository
	ingredients *mocks.MockIngredientRepository
	favorites   *mocks.MockFavoriteRepository
	ratings     *mocks.MockRatingRepository
}

func setupRecipeController() (*controllers.RecipeController, *recipeMocks) {
	m := &recipeMocks{
		recipes:     new(mocks.MockRecipeRepository),
		tags:        new(mocks.MockTagRepository),
		ingredients: new(mocks.MockIngredientRepository),
		favorites:   new(mocks.MockFavoriteRepository),
		ratings:     new(mocks.MockRatingRepository),
	}
	controller := controllers.NewRecipeController(
		m.recipes,
		m.tags,
		m.ingredients,
		m.favorites,
		m.ratings,
		services.NewShoppingListService(m.recipes),
	)
	return controller, m
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func storedRecipe(id, authorID uint) *models.Recipe {
	return &models.Recipe{
		ID:          id,
		AuthorID:    authorID,
		Author:      models.User{ID: authorID, Username: "author"},
		Title:       "Pancakes",
		Description: "Fluffy",
		Steps:       []string{"Mix.", "Fry."},
		TimeMinutes: 30,
		Tags:        []models.Tag{{ID: 1, Name: "breakfast"}},
	}
}

func TestCreateRecipe(t *testing.T) {
	validBody := map[string]interface{}{
		"title":        "Pancakes",
		"description":  "Fluffy",
		"steps":        []string{"Mix.", "Fry."},
		"time_minutes": 30,
		"tag_ids":      []uint{1},
		"ingredients_data": []map[string]interface{}{
			{"ingredient": 1, "amount": 200},
		},
	}

	tests := []struct {
		name           string
		authenticated  bool
		requestBody    map[string]interface{}
		setupMock      func(*recipeMocks)
		expectedStatus int
		expectedReason string
	}{
		{
			name:          "successful creation",
			authenticated: true,
			requestBody:   validBody,
			setupMock: func(m *recipeMocks) {
				m.tags.On("Exists", uint(1)).Return(true, nil)
				m.ingredients.On("Exists", uint(1)).Return(true, nil)
				m.recipes.On("Create", mock.AnythingOfType("*models.Recipe"), []uint{1}, mock.Anything).
					Run(func(args mock.Arguments) {
						args.Get(0).(*models.Recipe).ID = 1
					}).Return(nil)
				m.recipes.On("FindByID", uint(1)).Return(storedRecipe(1, 1), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unauthenticated",
			authenticated:  false,
			requestBody:    validBody,
			setupMock:      func(m *recipeMocks) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "missing tags",
			authenticated: true,
			requestBody: map[string]interface{}{
				"title":        "Pancakes",
				"time_minutes": 30,
				"ingredients_data": []map[string]interface{}{
					{"ingredient": 1, "amount": 200},
				},
			},
			setupMock:      func(m *recipeMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedReason: "missing_tags",
		},
		{
			name:          "missing ingredients",
			authenticated: true,
			requestBody: map[string]interface{}{
				"title":        "Pancakes",
				"time_minutes": 30,
				"tag_ids":      []uint{1},
			},
			setupMock: func(m *recipeMocks) {
				m.tags.On("Exists", uint(1)).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedReason: "missing_ingredients",
		},
		{
			name:          "unknown tag",
			authenticated: true,
			requestBody: map[string]interface{}{
				"title":        "Pancakes",
				"time_minutes": 30,
				"tag_ids":      []uint{99},
				"ingredients_data": []map[string]interface{}{
					{"ingredient": 1, "amount": 200},
				},
			},
			setupMock: func(m *recipeMocks) {
				m.tags.On("Exists", uint(99)).Return(false, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedReason: "unknown_tag",
		},
		{
			name:          "duplicate ingredient",
			authenticated: true,
			requestBody: map[string]interface{}{
				"title":        "Pancakes",
				"time_minutes": 30,
				"tag_ids":      []uint{1},
				"ingredients_data": []map[string]interface{}{
					{"ingredient": 1, "amount": 200},
					{"ingredient": 1, "amount": 100},
				},
			},
			setupMock: func(m *recipeMocks) {
				m.tags.On("Exists", uint(1)).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedReason: "duplicate_ingredient",
		},
		{
			name:          "unknown ingredient",
			authenticated: true,
			requestBody: map[string]interface{}{
				"title":        "Pancakes",
				"time_minutes": 30,
				"tag_ids":      []uint{1},
				"ingredients_data": []map[string]interface{}{
					{"ingredient": 42, "amount": 200},
				},
			},
			setupMock: func(m *recipeMocks) {
				m.tags.On("Exists", uint(1)).Return(true, nil)
				m.ingredients.On("Exists", uint(42)).Return(false, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedReason: "unknown_ingredient",
		},
		{
			name:          "time out of range",
			authenticated: true,
			requestBody: map[string]interface{}{
				"title":        "Pancakes",
				"time_minutes": 601,
				"tag_ids":      []uint{1},
				"ingredients_data": []map[string]interface{}{
					{"ingredient": 1, "amount": 200},
				},
			},
			setupMock:      func(m *recipeMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupRecipeController()
			tt.setupMock(m)

			router := setupTestRouter()
			if tt.authenticated {
				router.Use(addAuthMiddleware(1))
			}
			router.POST("/recipes", controller.CreateRecipe)

			w := performJSON(router, http.MethodPost, "/recipes", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedReason != "" {
				var resp map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedReason, resp["reason"])
			}
			m.recipes.AssertExpectations(t)
		})
	}
}

func TestUpdateRecipeOwnership(t *testing.T) {
	tests := []struct {
		name           string
		requesterID    uint
		expectedStatus int
	}{
		{"author may update", 1, http.StatusOK},
		{"non-author is rejected", 2, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupRecipeController()
			m.recipes.On("FindByID", uint(1)).Return(storedRecipe(1, 1), nil)
			if tt.expectedStatus == http.StatusOK {
				m.recipes.On("Update", mock.AnythingOfType("*models.Recipe"), mock.Anything, mock.Anything).Return(nil)
			}

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.requesterID))
			router.PATCH("/recipes/:id", controller.UpdateRecipe)

			w := performJSON(router, http.MethodPatch, "/recipes/1", map[string]interface{}{
				"title": "Renamed",
			})

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUpdateRecipeReplacesIngredientList(t *testing.T) {
	controller, m := setupRecipeController()
	m.recipes.On("FindByID", uint(1)).Return(storedRecipe(1, 1), nil)
	m.ingredients.On("Exists", uint(3)).Return(true, nil)

	var gotItems []domain.IngredientAmount
	m.recipes.On("Update", mock.AnythingOfType("*models.Recipe"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotItems = args.Get(2).([]domain.IngredientAmount)
		}).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PATCH("/recipes/:id", controller.UpdateRecipe)

	w := performJSON(router, http.MethodPatch, "/recipes/1", map[string]interface{}{
		"ingredients_data": []map[string]interface{}{
			{"ingredient": 3, "amount": 75},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.Len(t, gotItems, 1) {
		assert.Equal(t, uint(3), gotItems[0].IngredientID)
		assert.True(t, gotItems[0].Amount.Equal(decimal.NewFromInt(75)))
	}
	m.recipes.AssertExpectations(t)
}

// Omitting ingredients_data must leave the stored list untouched: the
// repository receives nil, not an empty replacement.
func TestUpdateRecipeWithoutIngredientsKeepsThem(t *testing.T) {
	controller, m := setupRecipeController()
	m.recipes.On("FindByID", uint(1)).Return(storedRecipe(1, 1), nil)

	var gotItems []domain.IngredientAmount
	var gotTags []uint
	m.recipes.On("Update", mock.AnythingOfType("*models.Recipe"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotTags, _ = args.Get(1).([]uint)
			gotItems, _ = args.Get(2).([]domain.IngredientAmount)
		}).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PATCH("/recipes/:id", controller.UpdateRecipe)

	w := performJSON(router, http.MethodPatch, "/recipes/1", map[string]interface{}{
		"title": "Still pancakes",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, gotTags)
	assert.Nil(t, gotItems)
}

func TestDeleteRecipe(t *testing.T) {
	tests := []struct {
		name           string
		requesterID    uint
		expectedStatus int
	}{
		{"author may delete", 1, http.StatusOK},
		{"non-author is rejected", 2, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupRecipeController()
			m.recipes.On("FindByID", uint(1)).Return(storedRecipe(1, 1), nil)
			if tt.expectedStatus == http.StatusOK {
				m.recipes.On("Delete", uint(1)).Return(nil)
			}

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.requesterID))
			router.DELETE("/recipes/:id", controller.DeleteRecipe)

			w := performJSON(router, http.MethodDelete, "/recipes/1", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			m.recipes.AssertExpectations(t)
		})
	}
}

func TestFavoriteRecipe(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*recipeMocks)
		expectedStatus int
	}{
		{
			name: "first favorite succeeds",
			setupMock: func(m *recipeMocks) {
				m.recipes.On("FindByID", uint(1)).Return(storedRecipe(1, 2), nil)
				m.favorites.On("Exists", uint(1), uint(1)).Return(false, nil)
				m.favorites.On("Create", mock.AnythingOfType("*models.Favorite")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "second favorite conflicts",
			setupMock: func(m *recipeMocks) {
				m.recipes.On("FindByID", uint(1)).Return(storedRecipe(1, 2), nil)
				m.favorites.On("Exists", uint(1), uint(1)).Return(true, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unknown recipe",
			setupMock: func(m *recipeMocks) {
				m.recipes.On("FindByID", uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupRecipeController()
			tt.setupMock(m)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.POST("/recipes/:id/favorite", controller.FavoriteRecipe)

			w := performJSON(router, http.MethodPost, "/recipes/1/favorite", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			m.favorites.AssertExpectations(t)
		})
	}
}

func TestUnfavoriteRecipe(t *testing.T) {
	t.Run("existing favorite is removed", func(t *testing.T) {
		controller, m := setupRecipeController()
		m.favorites.On("Delete", uint(1), uint(1)).Return(nil)

		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.DELETE("/recipes/:id/favorite", controller.UnfavoriteRecipe)

		w := performJSON(router, http.MethodDelete, "/recipes/1/favorite", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("never-favorited recipe is not found", func(t *testing.T) {
		controller, m := setupRecipeController()
		m.favorites.On("Delete", uint(1), uint(1)).Return(gorm.ErrRecordNotFound)

		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.DELETE("/recipes/:id/favorite", controller.UnfavoriteRecipe)

		w := performJSON(router, http.MethodDelete, "/recipes/1/favorite", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRateRecipe(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		setupMock      func(*recipeMocks)
		expectedStatus int
	}{
		{
			name: "valid rating",
			body: map[string]interface{}{"value": 5},
			setupMock: func(m *recipeMocks) {
				m.recipes.On("FindByID", uint(1)).Return(storedRecipe(1, 2), nil)
				m.ratings.On("Upsert", uint(1), uint(1), 5).
					Return(&models.Rating{ID: 1, UserID: 1, RecipeID: 1, Value: 5}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "value too low",
			body:           map[string]interface{}{"value": 0},
			setupMock:      func(m *recipeMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "value too high",
			body:           map[string]interface{}{"value": 6},
			setupMock:      func(m *recipeMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupRecipeController()
			tt.setupMock(m)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.POST("/recipes/:id/rating", controller.RateRecipe)

			w := performJSON(router, http.MethodPost, "/recipes/1/rating", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			m.ratings.AssertExpectations(t)
		})
	}
}

func TestDeleteRatingNotFound(t *testing.T) {
	controller, m := setupRecipeController()
	m.ratings.On("Delete", uint(1), uint(1)).Return(gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.DELETE("/recipes/:id/rating", controller.DeleteRating)

	w := performJSON(router, http.MethodDelete, "/recipes/1/rating", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShoppingList(t *testing.T) {
	t.Run("sums across selected recipes", func(t *testing.T) {
		controller, m := setupRecipeController()
		m.recipes.On("FindByIDs", []uint{1, 2}).Return([]models.Recipe{
			{RecipeIngredients: []models.RecipeIngredient{
				{Ingredient: models.Ingredient{Name: "flour", Unit: "g"}, Amount: decimal.NewFromInt(200)},
				{Ingredient: models.Ingredient{Name: "sugar", Unit: "g"}, Amount: decimal.NewFromInt(50)},
			}},
			{RecipeIngredients: []models.RecipeIngredient{
				{Ingredient: models.Ingredient{Name: "flour", Unit: "g"}, Amount: decimal.NewFromInt(300)},
				{Ingredient: models.Ingredient{Name: "egg", Unit: "pcs"}, Amount: decimal.NewFromInt(2)},
			}},
		}, nil)

		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.POST("/recipes/shopping_list", controller.ShoppingList)

		w := performJSON(router, http.MethodPost, "/recipes/shopping_list", map[string]interface{}{
			"recipe_ids": []uint{1, 2},
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data map[string]string `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, map[string]string{
			"flour (g)": "500",
			"sugar (g)": "50",
			"egg (pcs)": "2",
		}, resp.Data)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		controller, _ := setupRecipeController()

		router := setupTestRouter()
		router.POST("/recipes/shopping_list", controller.ShoppingList)

		w := performJSON(router, http.MethodPost, "/recipes/shopping_list", map[string]interface{}{})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetAllRecipesFavoritedFilter(t *testing.T) {
	controller, m := setupRecipeController()
	m.recipes.On("FindAll", repository.RecipeFilter{FavoritedBy: 1}).Return([]models.Recipe{}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/recipes", controller.GetAllRecipes)

	w := performJSON(router, http.MethodGet, "/recipes?favorited=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	m.recipes.AssertExpectations(t)
}
