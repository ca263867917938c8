package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alimbdit/bistro-boss-server/database"
)

// Driver results are surfaced with the field names the client already reads
// (insertedId, modifiedCount, deletedCount).

func sendInsertResult(c *gin.Context, res *mongo.InsertOneResult) {
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": res.InsertedID})
}

func sendUpdateResult(c *gin.Context, res *mongo.UpdateResult) {
	c.JSON(http.StatusOK, gin.H{
		"acknowledged":  true,
		"matchedCount":  res.MatchedCount,
		"modifiedCount": res.ModifiedCount,
	})
}

func sendDeleteResult(c *gin.Context, res *mongo.DeleteResult) {
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": res.DeletedCount})
}

func sendStorageError(c *gin.Context, err error) {
	if errors.Is(err, database.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid id"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "internal server error"})
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid request body"})
}
