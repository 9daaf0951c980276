package main

import (
	"HealingRays/CronJobs"
	"HealingRays/FirebaseMessaging"
	"HealingRays/Models"
	"HealingRays/Routes"
	"HealingRays/Storage"
	"HealingRays/Whatsapp"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectDataBase()
	Storage.Setup()
	FirebaseMessaging.Setup()
	go Whatsapp.Listen()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://healingrays.ddns.net", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))
	Routes.ConfigRoutes(router)

	reminderService := CronJobs.NewSessionReminder(Models.DB)
	reminderService.StartReminderCron()

	router.Run(":3005")
}
