package categoryControllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MansiS117/api-bookstore/models"
	"github.com/MansiS117/api-bookstore/testutil"
)

func TestGetCategories(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	require.NoError(t, db.Create(&models.Category{Name: "Fiction"}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "Science"}).Error)

	w := testutil.DoRequest(t, r, http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.Category
	testutil.DecodeJSON(t, w, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "Fiction", resp[0].Name)
	assert.Equal(t, "Science", resp[1].Name)
}

func TestGetCategories_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	w := testutil.DoRequest(t, r, http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.Category
	testutil.DecodeJSON(t, w, &resp)
	assert.Empty(t, resp)
}

func TestGetCategoryByID_WithBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	seller := testutil.CreateUser(t, db, "seller@example.com", models.RoleSeller)
	category := models.Category{Name: "Fiction"}
	require.NoError(t, db.Create(&category).Error)

	book := testutil.CreateBook(t, db, seller, "Categorized Book", "10.00")
	require.NoError(t, db.Model(book).Update("category_id", category.ID).Error)
	testutil.CreateBook(t, db, seller, "Uncategorized Book", "5.00")

	w := testutil.DoRequest(t, r, http.MethodGet, fmt.Sprintf("/categories/%d", category.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.Category
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, "Fiction", resp.Name)
	require.Len(t, resp.Books, 1)
	assert.Equal(t, "Categorized Book", resp.Books[0].Title)
}

func TestDeleteCategory_DetachesBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	seller := testutil.CreateUser(t, db, "seller@example.com", models.RoleSeller)
	token := testutil.Login(t, db, seller)

	category := models.Category{Name: "Doomed"}
	require.NoError(t, db.Create(&category).Error)
	book := testutil.CreateBook(t, db, seller, "Survivor", "10.00")
	require.NoError(t, db.Model(book).Update("category_id", category.ID).Error)

	w := testutil.DoRequest(t, r, http.MethodDelete, fmt.Sprintf("/categories/%d", category.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The book survives with a null category.
	require.NoError(t, db.First(book, book.ID).Error)
	assert.Nil(t, book.CategoryID)

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateCategory_RequiresSeller(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	buyer := testutil.CreateUser(t, db, "buyer@example.com", models.RoleBuyer)
	token := testutil.Login(t, db, buyer)

	w := testutil.DoRequest(t, r, http.MethodPost, "/categories", token,
		map[string]any{"name": "Fiction"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
