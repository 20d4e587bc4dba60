package handler

import (
	"ethiohomes/internal/usecase"
)

var (
	authHandler        *AuthHandler
	userHandler        *UserHandler
	listingHandler     *ListingHandler
	submissionHandler  *SubmissionHandler
	applicationHandler *ApplicationHandler
	paymentHandler     *PaymentHandler
	bannerHandler      *BannerHandler
	adminHandler       *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	listingUseCase *usecase.ListingUseCase,
	submissionUseCase *usecase.SubmissionUseCase,
	applicationUseCase *usecase.ApplicationUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	bannerUseCase *usecase.BannerUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	submissionHandler = NewSubmissionHandler(submissionUseCase)
	applicationHandler = NewApplicationHandler(applicationUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
	bannerHandler = NewBannerHandler(bannerUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetSubmissionHandler() *SubmissionHandler {
	return submissionHandler
}

func GetApplicationHandler() *ApplicationHandler {
	return applicationHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetBannerHandler() *BannerHandler {
	return bannerHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
