package Controllers

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"HealingRays/Models"
	"HealingRays/Scheduling"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

// ExportAll assembles the practitioner's full dataset into one JSON document.
// The five reads are independent, so they run concurrently and join before
// the response is composed.
func ExportAll(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var (
		clients   []Models.Client
		protocols []Models.Protocol
		sessions  []Models.Session
		payments  []Models.Payment
		nurturing []Models.NurturingSession
	)

	errs := make([]error, 5)
	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		errs[0] = Models.DB.Model(&Models.Client{}).Scopes(Models.ActiveOwnedBy(userID)).Preload("Notes").Find(&clients).Error
	}()
	go func() {
		defer wg.Done()
		errs[1] = Models.DB.Model(&Models.Protocol{}).Scopes(Models.ActiveOwnedBy(userID)).Find(&protocols).Error
	}()
	go func() {
		defer wg.Done()
		errs[2] = Models.DB.Model(&Models.Session{}).Scopes(Models.ActiveOwnedBy(userID)).Order("scheduled_date asc").Find(&sessions).Error
	}()
	go func() {
		defer wg.Done()
		errs[3] = Models.DB.Model(&Models.Payment{}).Scopes(Models.ActiveOwnedBy(userID)).Find(&payments).Error
	}()
	go func() {
		defer wg.Done()
		errs[4] = Models.DB.Model(&Models.NurturingSession{}).Scopes(Models.ActiveOwnedBy(userID)).Order("date asc").Find(&nurturing).Error
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"exportDate": time.Now(),
		"version":    "1.0",
		"data": gin.H{
			"clients":   clients,
			"protocols": protocols,
			"sessions":  sessions,
			"payments":  payments,
			"nurturing": nurturing,
		},
	})
}

// ExportDuesExcel writes the dues summary to a workbook and serves the file.
func ExportDuesExcel(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var sessions []Models.Session
	if err := Models.DB.Model(&Models.Session{}).Scopes(Models.ActiveOwnedBy(userID)).
		Where("status = ?", Models.SessionStatusCompleted).Find(&sessions).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var payments []Models.Payment
	if err := Models.DB.Model(&Models.Payment{}).Scopes(Models.ActiveOwnedBy(userID)).
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	names, err := clientNames(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dues := Scheduling.ComputeDues(sessions, payments, names)

	headers := map[string]string{
		"A1": "Client",
		"B1": "Total Billed",
		"C1": "Total Paid",
		"D1": "Balance",
		"E1": "Status",
	}
	file := excelize.NewFile()
	sheet := "Dues"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(dues); i++ {
		appendRowDues(sheet, file, i, dues)
	}
	var filename string = "./Dues.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowDues(sheet string, file *excelize.File, index int, rows []Scheduling.ClientDues) *excelize.File {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].ClientName)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].TotalBilled)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].TotalPaid)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Balance)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].Status)
	return file
}
