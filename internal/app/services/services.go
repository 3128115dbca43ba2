package services

// Services defined in this package:
// - AuthService: Handles admin authentication and account management
// - FacultyService: Handles faculty record operations
// - BuzzService: Handles buzz announcement operations
// - InquiryService: Handles contact inquiry operations
