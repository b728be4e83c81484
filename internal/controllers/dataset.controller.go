package controllers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"calorify/internal/models"
	"calorify/internal/repository"

	"github.com/gin-gonic/gin"
)

// Column names match the CSV export format of the source dataset, so files
// downloaded from it import without renaming headers.
var (
	exerciseCSVColumns = []string{"User_ID", "Gender", "Age", "Height", "Weight", "Duration", "Heart_Rate", "Body_Temp"}
	caloriesCSVColumns = []string{"User_ID", "Calories"}
)

type DatasetController struct {
	exerciseRepo repository.ExerciseDataRepository
	caloriesRepo repository.CaloriesDataRepository
}

func NewDatasetController(
	exerciseRepo repository.ExerciseDataRepository,
	caloriesRepo repository.CaloriesDataRepository,
) *DatasetController {
	return &DatasetController{
		exerciseRepo: exerciseRepo,
		caloriesRepo: caloriesRepo,
	}
}

// CreateExerciseData godoc
// @Summary Create an exercise record
// @Description Add a single exercise record to the training dataset
// @Tags datasets
// @Accept json
// @Produce json
// @Param record body models.ExerciseData true "Exercise record"
// @Success 201 {object} map[string]interface{} "Record created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create record"
// @Router /datasets/exercise [post]
func (dc *DatasetController) CreateExerciseData(c *gin.Context) {
	var record models.ExerciseData
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := dc.exerciseRepo.Create(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create exercise record",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Exercise record created successfully",
		"data":    record,
	})
}

// ListExerciseData godoc
// @Summary List exercise records
// @Description Retrieve all exercise records in the dataset
// @Tags datasets
// @Produce json
// @Success 200 {object} map[string]interface{} "Records retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve records"
// @Router /datasets/exercise [get]
func (dc *DatasetController) ListExerciseData(c *gin.Context) {
	records, err := dc.exerciseRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve exercise records",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(records),
		"data":   records,
	})
}

// DeleteExerciseData godoc
// @Summary Delete an exercise record
// @Description Delete a single exercise record by ID
// @Tags datasets
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]interface{} "Record deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid record ID"
// @Failure 500 {object} map[string]interface{} "Failed to delete record"
// @Router /datasets/exercise/{id} [delete]
func (dc *DatasetController) DeleteExerciseData(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid record ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := dc.exerciseRepo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete exercise record",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercise record deleted successfully",
	})
}

// CreateCaloriesData godoc
// @Summary Create a calories record
// @Description Add a single calorie outcome record to the training dataset
// @Tags datasets
// @Accept json
// @Produce json
// @Param record body models.CaloriesData true "Calories record"
// @Success 201 {object} map[string]interface{} "Record created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create record"
// @Router /datasets/calories [post]
func (dc *DatasetController) CreateCaloriesData(c *gin.Context) {
	var record models.CaloriesData
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := dc.caloriesRepo.Create(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create calories record",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Calories record created successfully",
		"data":    record,
	})
}

// ListCaloriesData godoc
// @Summary List calories records
// @Description Retrieve all calorie outcome records in the dataset
// @Tags datasets
// @Produce json
// @Success 200 {object} map[string]interface{} "Records retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve records"
// @Router /datasets/calories [get]
func (dc *DatasetController) ListCaloriesData(c *gin.Context) {
	records, err := dc.caloriesRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve calories records",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(records),
		"data":   records,
	})
}

// DeleteCaloriesData godoc
// @Summary Delete a calories record
// @Description Delete a single calories record by ID
// @Tags datasets
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]interface{} "Record deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid record ID"
// @Failure 500 {object} map[string]interface{} "Failed to delete record"
// @Router /datasets/calories/{id} [delete]
func (dc *DatasetController) DeleteCaloriesData(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid record ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := dc.caloriesRepo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete calories record",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Calories record deleted successfully",
	})
}

// ImportExerciseCSV godoc
// @Summary Import exercise records from CSV
// @Description Bulk import exercise records; rows replace existing records with the same user_id
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with columns User_ID, Gender, Age, Height, Weight, Duration, Heart_Rate, Body_Temp"
// @Success 200 {object} map[string]interface{} "Records imported successfully"
// @Failure 400 {object} map[string]interface{} "Invalid CSV file"
// @Failure 500 {object} map[string]interface{} "Failed to import records"
// @Router /datasets/exercise/import [post]
func (dc *DatasetController) ImportExerciseCSV(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "CSV file is required",
			"error":   err.Error(),
		})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to open uploaded file",
			"error":   err.Error(),
		})
		return
	}
	defer f.Close()

	records, err := parseExerciseCSV(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid CSV file",
			"error":   err.Error(),
		})
		return
	}

	if err := dc.exerciseRepo.ReplaceByUserID(records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to import exercise records",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"message":  "Exercise records imported successfully",
		"imported": len(records),
	})
}

// ImportCaloriesCSV godoc
// @Summary Import calories records from CSV
// @Description Bulk import calorie outcomes; rows replace existing records with the same user_id
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with columns User_ID, Calories"
// @Success 200 {object} map[string]interface{} "Records imported successfully"
// @Failure 400 {object} map[string]interface{} "Invalid CSV file"
// @Failure 500 {object} map[string]interface{} "Failed to import records"
// @Router /datasets/calories/import [post]
func (dc *DatasetController) ImportCaloriesCSV(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "CSV file is required",
			"error":   err.Error(),
		})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to open uploaded file",
			"error":   err.Error(),
		})
		return
	}
	defer f.Close()

	records, err := parseCaloriesCSV(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid CSV file",
			"error":   err.Error(),
		})
		return
	}

	if err := dc.caloriesRepo.ReplaceByUserID(records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to import calories records",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"message":  "Calories records imported successfully",
		"imported": len(records),
	})
}

// ========== CSV PARSING ==========

func readCSVColumns(r io.Reader, required []string) ([][]string, map[string]int, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("csv has no data rows")
	}
	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", name)
		}
	}
	return rows[1:], columns, nil
}

func parseExerciseCSV(r io.Reader) ([]models.ExerciseData, error) {
	rows, col, err := readCSVColumns(r, exerciseCSVColumns)
	if err != nil {
		return nil, err
	}

	records := make([]models.ExerciseData, 0, len(rows))
	for line, row := range rows {
		userID, err := strconv.ParseInt(strings.TrimSpace(row[col["User_ID"]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid User_ID: %w", line+2, err)
		}
		age, err := strconv.Atoi(strings.TrimSpace(row[col["Age"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid Age: %w", line+2, err)
		}
		floats := make(map[string]float64, 5)
		for _, name := range []string{"Height", "Weight", "Duration", "Heart_Rate", "Body_Temp"} {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[col[name]]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid %s: %w", line+2, name, err)
			}
			floats[name] = v
		}
		records = append(records, models.ExerciseData{
			UserID:    userID,
			Gender:    strings.ToLower(strings.TrimSpace(row[col["Gender"]])),
			Age:       age,
			Height:    floats["Height"],
			Weight:    floats["Weight"],
			Duration:  floats["Duration"],
			HeartRate: floats["Heart_Rate"],
			BodyTemp:  floats["Body_Temp"],
		})
	}
	return records, nil
}

func parseCaloriesCSV(r io.Reader) ([]models.CaloriesData, error) {
	rows, col, err := readCSVColumns(r, caloriesCSVColumns)
	if err != nil {
		return nil, err
	}

	records := make([]models.CaloriesData, 0, len(rows))
	for line, row := range rows {
		userID, err := strconv.ParseInt(strings.TrimSpace(row[col["User_ID"]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid User_ID: %w", line+2, err)
		}
		calories, err := strconv.ParseFloat(strings.TrimSpace(row[col["Calories"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid Calories: %w", line+2, err)
		}
		records = append(records, models.CaloriesData{
			UserID:   userID,
			Calories: calories,
		})
	}
	return records, nil
}
