package routers

import (
	"github.com/unicsmcr/healthcare_api/routers/api/models"
	"github.com/unicsmcr/healthcare_api/routers/api/resources"
	"github.com/unicsmcr/healthcare_api/routers/api/uploads"
	"github.com/unicsmcr/healthcare_api/services/mongo"
)

// DefaultRoutes returns the route table of the API, in registration order
func DefaultRoutes() []RouteEntry {
	return []RouteEntry{
		{MountName: "about", Factory: documentRoutes("about")},
		{MountName: "collections", Factory: documentRoutes("collections")},
		{MountName: "services", Factory: documentRoutes("services")},
		{MountName: "hospitals", Factory: documentRoutes("hospitals")},
		{MountName: "procedure-costs", Factory: documentRoutes("procedureCosts")},
		{MountName: "patient-opinions", Factory: documentRoutes("patientOpinions")},
		{MountName: "faqs", Factory: documentRoutes("faqs")},
		{MountName: "assistance", Factory: documentRoutes("assistance")},
		{MountName: "doctors", Factory: documentRoutes("doctors")},
		{MountName: "treatments", Factory: documentRoutes("treatments")},
		{MountName: "doctor-treatment", Factory: documentRoutes("doctorTreatments")},
		{MountName: "hospital-treatment", Factory: documentRoutes("hospitalTreatments")},
		{MountName: "booking", Factory: documentRoutes("bookings")},
		{MountName: "admin", Factory: documentRoutes("admins")},
		{MountName: "language", Factory: documentRoutes("languages")},
		{MountName: "headings", Factory: documentRoutes("headings")},
		{MountName: "blogs", Factory: documentRoutes("blogs")},
		{MountName: "upload", Factory: uploadRoutes},
		{MountName: "patients", Factory: documentRoutes("patients")},
	}
}

// documentRoutes returns a factory of CRUD routes over the given collection
func documentRoutes(collection string) RouterFactory {
	return func(deps Dependencies) (models.Router, error) {
		documentService := mongo.NewMongoDocumentService(deps.Logger, deps.Connector, deps.TimeProvider, collection)
		return resources.NewRouter(deps.Logger, documentService), nil
	}
}

func uploadRoutes(deps Dependencies) (models.Router, error) {
	return uploads.NewRouter(deps.Logger, deps.Uploads)
}
