package usecase

// Export unexported functions for testing
var (
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
	CopyPublicFilesForTest             = copyPublicFiles
	ParseArchForTest                   = parseArch
	WritePackagesForTest               = writePackages
)
