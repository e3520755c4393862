package db

import (
	"prd_manager/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seed wipes category/feature data and loads the initial PRD dataset.
// Users are left untouched.
func Seed(db *gorm.DB) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		// Clear existing data
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Feature{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Category{}).Error; err != nil {
			return err
		}
		for i := range seedCategories {
			if err := tx.Create(&seedCategories[i]).Error; err != nil {
				return err
			}
		}
		for i := range seedFeatures {
			if err := tx.Create(&seedFeatures[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"categories": len(seedCategories),
		"features":   len(seedFeatures),
	}).Info("Database seeded successfully")
	return nil
}

var seedCategories = []domain.Category{
	{ID: "1", Name: "User Authentication", Description: "Features related to user login, registration, and account management"},
	{ID: "2", Name: "Analytics Dashboard", Description: "Features for data visualization and reporting"},
	{ID: "3", Name: "Mobile Application", Description: "Features for the iOS and Android mobile applications"},
	{ID: "4", Name: "Payment Processing", Description: "Features related to billing, subscriptions, and payment methods"},
	{ID: "5", Name: "Performance Optimization", Description: "Features focused on improving application speed and efficiency"},
	{ID: "6", Name: "Collaboration Tools", Description: "Features that enable team collaboration and communication"},
}

var seedFeatures = []domain.Feature{
	{ID: "1.1", CategoryID: "1", Title: "Social Login Integration", Priority: domain.PriorityHigh,
		Description: "Allow users to sign in with Google, Facebook, and Twitter",
		KPI:         "Increase sign-up rate by 30%", CustomerName: "Marketing Team",
		EngineeringComment: "OAuth implementation required", EngineeringSignoff: true,
		EngineeringComplexity: domain.SizeM, ReleaseDate: "2023-06"},
	{ID: "1.2", CategoryID: "1", Title: "Password Reset Flow", Priority: domain.PriorityHigh,
		Description: "Implement secure password reset via email",
		KPI:         "Reduce support tickets by 25%", CustomerName: "Support Team",
		EngineeringComment: "Need to integrate with email service", EngineeringSignoff: true,
		EngineeringComplexity: domain.SizeS, ReleaseDate: "2023-05"},
	{ID: "1.3", CategoryID: "1", Title: "Two-Factor Authentication", Priority: domain.PriorityMedium,
		Description: "Add SMS and authenticator app options for 2FA",
		KPI:         "Improve security metrics by 40%", CustomerName: "Security Team",
		EngineeringComment: "Will require integration with SMS provider", EngineeringSignoff: true,
		EngineeringComplexity: domain.SizeL, ReleaseDate: "2023-07"},
	{ID: "1.4", CategoryID: "1", Title: "Account Lockout Protection", Priority: domain.PriorityMedium,
		Description: "Implement temporary account lockout after failed login attempts",
		KPI:         "Reduce unauthorized access attempts by 60%", CustomerName: "Security Team",
		EngineeringComment: "Need to design rate limiting system", EngineeringSignoff: false,
		EngineeringComplexity: domain.SizeM, ReleaseDate: "2023-08"},
	{ID: "1.5", CategoryID: "1", Title: "Role-based Access Control", Priority: domain.PriorityHigh,
		Description: "Implement granular permission system for different user roles",
		KPI:         "Improve enterprise adoption by 20%", CustomerName: "Enterprise Sales",
		EngineeringComment: "Will require database schema changes", EngineeringSignoff: false,
		EngineeringComplexity: domain.SizeXL, ReleaseDate: "2023-09"},
	{ID: "2.1", CategoryID: "2", Title: "Custom Report Builder", Priority: domain.PriorityMedium,
		Description: "Allow users to create and save custom reports",
		KPI:         "Increase user engagement by 15%", CustomerName: "Data Science Team",
		EngineeringComment: "Will require new database schema", EngineeringSignoff: false,
		EngineeringComplexity: domain.SizeL, ReleaseDate: "2023-08"},
	{ID: "2.2", CategoryID: "2", Title: "Real-time Data Visualization", Priority: domain.PriorityHigh,
		Description: "Implement live-updating charts and graphs for key metrics",
		KPI:         "Reduce time to insight by 50%", CustomerName: "Executive Team",
		EngineeringComment: "Need to implement WebSocket connections", EngineeringSignoff: true,
		EngineeringComplexity: domain.SizeL, ReleaseDate: "2023-07"},
	{ID: "2.3", CategoryID: "2", Title: "Export to PDF/CSV", Priority: domain.PriorityLow,
		Description: "Allow users to export reports in multiple formats",
		KPI:         "Improve sharing capabilities by 30%", CustomerName: "Marketing Team",
		EngineeringComment: "Need to research PDF generation libraries", EngineeringSignoff: true,
		EngineeringComplexity: domain.SizeM, ReleaseDate: "2023-06"},
	{ID: "2.4", CategoryID: "2", Title: "Scheduled Reports", Priority: domain.PriorityMedium,
		Description: "Allow users to schedule automated report generation and delivery",
		KPI:         "Reduce manual reporting time by 70%", CustomerName: "Account Management",
		EngineeringComment: "Will need to set up cron jobs and email delivery", EngineeringSignoff: false,
		EngineeringComplexity: domain.SizeM, ReleaseDate: "2023-10"},
	{ID: "3.1", CategoryID: "3", Title: "Offline Mode", Priority: domain.PriorityHigh,
		Description: "Allow users to access key features without internet connection",
		KPI:         "Increase mobile usage by 40%", CustomerName: "Product Team",
		EngineeringComment: "Need to implement local storage and sync", EngineeringSignoff: true,
		EngineeringComplexity: domain.SizeXL, ReleaseDate: "2023-09"},
	{ID: "3.2", CategoryID: "3", Title: "Push Notifications", Priority: domain.PriorityMedium,
		Description: "Implement customizable push notifications for important events",
		KPI:         "Improve re-engagement rate by 25%", CustomerName: "Marketing Team",
		EngineeringComment: "Will use Firebase Cloud Messaging", EngineeringSignoff: true,
		EngineeringComplexity: domain.SizeM, ReleaseDate: "2023-06"},
	{ID: "3.3", CategoryID: "3", Title: "Biometric Authentication", Priority: domain.PriorityMedium,
		Description: "Add fingerprint and face recognition login options",
		KPI:         "Improve login convenience score by 30%", CustomerName: "UX Team",
		EngineeringComment: "Need to use native device APIs", EngineeringSignoff: false,
		EngineeringComplexity: domain.SizeL, ReleaseDate: "2023-08"},
	{ID: "3.4", CategoryID: "3", Title: "AR Feature Integration", Priority: domain.PriorityLow,
		Description: "Implement augmented reality features for product visualization",
		KPI:         "Increase product interaction by 15%", CustomerName: "Innovation Team",
		EngineeringComment: "Experimental feature, will need ARKit/ARCore", EngineeringSignoff: false,
		EngineeringComplexity: domain.SizeXL, ReleaseDate: "2023-11"},
	{ID: "4.1", CategoryID: "4", Title: "Subscription Management", Priority: domain.PriorityHigh,
		Description: "Allow users to manage their subscription plans and billing cycles",
		KPI:         "Reduce subscription churn by 20%", CustomerName: "Finance Team",
		EngineeringComment: "Will integrate with Stripe API", EngineeringSignoff: true,
		EngineeringComplexity: domain.SizeL, ReleaseDate: "2023-07"},
	{ID: "4.2", CategoryID: "4", Title: "Multiple Payment Methods", Priority: domain.PriorityMedium,
		Description: "Support credit cards, PayPal, and bank transfers",
		KPI:         "Increase payment success rate by 15%", CustomerName: "Global Sales",
		EngineeringComment: "Need to implement multiple payment gateways", EngineeringSignoff: true,
		EngineeringComplexity: domain.SizeM, ReleaseDate: "2023-08"},
	{ID: "4.3", CategoryID: "4", Title: "Invoice Generation", Priority: domain.PriorityLow,
		Description: "Automatically generate and email invoices for payments",
		KPI:         "Reduce accounting workload by 30%", CustomerName: "Finance Team",
		EngineeringComment: "Will need PDF generation capability", EngineeringSignoff: false,
		EngineeringComplexity: domain.SizeS, ReleaseDate: "2023-09"},
	{ID: "5.1", CategoryID: "5", Title: "Image Compression", Priority: domain.PriorityMedium,
		Description: "Implement automatic image optimization for uploads",
		KPI:         "Reduce page load time by 25%", CustomerName: "UX Team",
		EngineeringComment: "Will use server-side processing", EngineeringSignoff: true,
		EngineeringComplexity: domain.SizeM, ReleaseDate: "2023-06"},
	{ID: "5.2", CategoryID: "5", Title: "Database Query Optimization", Priority: domain.PriorityHigh,
		Description: "Refactor database queries for improved performance",
		KPI:         "Reduce API response time by 40%", CustomerName: "Engineering",
		EngineeringComment: "Will require significant refactoring", EngineeringSignoff: true,
		EngineeringComplexity: domain.SizeL, ReleaseDate: "2023-07"},
	{ID: "5.3", CategoryID: "5", Title: "CDN Integration", Priority: domain.PriorityMedium,
		Description: "Implement content delivery network for static assets",
		KPI:         "Improve global load times by 50%", CustomerName: "International Sales",
		EngineeringComment: "Will use CloudFront or similar", EngineeringSignoff: false,
		EngineeringComplexity: domain.SizeM, ReleaseDate: "2023-10"},
	{ID: "6.1", CategoryID: "6", Title: "Shared Workspaces", Priority: domain.PriorityHigh,
		Description: "Create team workspaces with shared resources and permissions",
		KPI:         "Increase team productivity by 30%", CustomerName: "Enterprise Customers",
		EngineeringComment: "Complex permission system required", EngineeringSignoff: true,
		EngineeringComplexity: domain.SizeXL, ReleaseDate: "2023-08"},
	{ID: "6.2", CategoryID: "6", Title: "In-app Messaging", Priority: domain.PriorityMedium,
		Description: "Implement real-time chat functionality between team members",
		KPI:         "Reduce email communication by 40%", CustomerName: "Product Team",
		EngineeringComment: "Will use WebSockets for real-time updates", EngineeringSignoff: false,
		EngineeringComplexity: domain.SizeL, ReleaseDate: "2023-09"},
	{ID: "6.3", CategoryID: "6", Title: "Document Collaboration", Priority: domain.PriorityMedium,
		Description: "Allow multiple users to edit documents simultaneously",
		KPI:         "Improve document completion time by 50%", CustomerName: "Content Team",
		EngineeringComment: "Will need operational transformation algorithm", EngineeringSignoff: false,
		EngineeringComplexity: domain.SizeXL, ReleaseDate: "2023-11"},
	{ID: "6.4", CategoryID: "6", Title: "Activity Feed", Priority: domain.PriorityLow,
		Description: "Show recent activities and changes by team members",
		KPI:         "Increase awareness of team activities by 35%", CustomerName: "Project Managers",
		EngineeringComment: "Will need to implement activity logging system", EngineeringSignoff: true,
		EngineeringComplexity: domain.SizeM, ReleaseDate: "2023-07"},
}
