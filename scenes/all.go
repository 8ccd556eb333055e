package scenes

// All contains all scenes, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]Scene{
	"cross": crossScenes,
	"shape": shapeScenes,
}
