// Package swagger registers the OpenAPI document served under /docs.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {"title": "PIPS Site API", "description": "Content, forms and administration API for the Pinetown Independent Primary School website.", "version": "1.0.0"},
    "basePath": "/api/v1",
    "schemes": ["http", "https"],
    "securityDefinitions": {"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}},
    "tags": [{"name": "Content"}, {"name": "Posts"}, {"name": "Forms"}, {"name": "Search"}, {"name": "SEO"}, {"name": "Auth"}, {"name": "Admin"}],
    "paths": {
        "/contact": {
            "get": {"tags": ["Content"], "summary": "Contact details", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/gallery": {
            "get": {"tags": ["Content"], "summary": "Gallery images", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/gallery/lightbox": {
            "get": {"tags": ["Content"], "summary": "Lightbox view state", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "index", "in": "query", "required": false, "type": "string"}, {"name": "action", "in": "query", "required": false, "type": "string"}]}
        },
        "/faq/accordion": {
            "get": {"tags": ["Content"], "summary": "FAQ accordion view", "produces": ["application/json"], "parameters": [{"name": "items", "in": "query", "required": true, "type": "string"}, {"name": "open", "in": "query", "required": false, "type": "string"}, {"name": "action", "in": "query", "required": false, "type": "string"}, {"name": "id", "in": "query", "required": false, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/notices": {
            "get": {"tags": ["Content"], "summary": "Notices by tab", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "tab", "in": "query", "required": false, "type": "string"}]}
        },
        "/notices/modal": {
            "get": {"tags": ["Content"], "summary": "Notice modal content", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "type", "in": "query", "required": false, "type": "string"}]}
        },
        "/uniforms": {
            "get": {"tags": ["Content"], "summary": "Uniform price lists", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/posts": {
            "get": {"tags": ["Posts"], "summary": "List posts", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "type", "in": "query", "required": false, "type": "string"}, {"name": "category", "in": "query", "required": false, "type": "string"}, {"name": "page", "in": "query", "required": false, "type": "string"}, {"name": "pageSize", "in": "query", "required": false, "type": "string"}]}
        },
        "/posts/featured": {
            "get": {"tags": ["Posts"], "summary": "Featured posts", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/posts/featured/carousel": {
            "get": {"tags": ["Posts"], "summary": "Featured carousel", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/posts/recent": {
            "get": {"tags": ["Posts"], "summary": "Recent posts", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "limit", "in": "query", "required": false, "type": "string"}]}
        },
        "/posts/search": {
            "get": {"tags": ["Posts"], "summary": "Search posts", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "q", "in": "query", "required": false, "type": "string"}]}
        },
        "/posts/types/{type}": {
            "get": {"tags": ["Posts"], "summary": "Posts of one type", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "type", "in": "path", "required": true, "type": "string"}]}
        },
        "/posts/{id}": {
            "get": {"tags": ["Posts"], "summary": "Get a post", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}]}
        },
        "/posts/{id}/like": {
            "post": {"tags": ["Posts"], "summary": "Like a post", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}]},
            "delete": {"tags": ["Posts"], "summary": "Remove a like", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}]}
        },
        "/posts/{id}/comments": {
            "post": {"tags": ["Posts"], "summary": "Comment on a post", "produces": ["application/json"], "responses": {"201": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CommentRequest"}}]}
        },
        "/posts/{id}/share": {
            "get": {"tags": ["Posts"], "summary": "Share links", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "url", "in": "query", "required": false, "type": "string"}]}
        },
        "/forms": {
            "get": {"tags": ["Forms"], "summary": "Form definitions", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/forms/{form}": {
            "get": {"tags": ["Forms"], "summary": "Form definition", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Unknown form", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "form", "in": "path", "required": true, "type": "string"}]}
        },
        "/forms/{form}/validate": {
            "post": {"tags": ["Forms"], "summary": "Validate one field", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "form", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FieldCheckRequest"}}]}
        },
        "/forms/{form}/submit": {
            "post": {"tags": ["Forms"], "summary": "Submit a form", "produces": ["application/json"], "responses": {"201": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Unknown form", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "form", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitRequest"}}]}
        },
        "/forms/{form}/draft": {
            "put": {"tags": ["Forms"], "summary": "Save a draft", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "form", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DraftRequest"}}]},
            "get": {"tags": ["Forms"], "summary": "Recover a draft", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "No draft", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "form", "in": "path", "required": true, "type": "string"}, {"name": "page", "in": "query", "required": false, "type": "string"}]},
            "delete": {"tags": ["Forms"], "summary": "Discard a draft", "produces": ["application/json"], "responses": {"204": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "form", "in": "path", "required": true, "type": "string"}, {"name": "page", "in": "query", "required": false, "type": "string"}]}
        },
        "/search": {
            "get": {"tags": ["Search"], "summary": "Site search", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Empty term", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "q", "in": "query", "required": false, "type": "string"}, {"name": "cat", "in": "query", "required": false, "type": "string"}, {"name": "grade", "in": "query", "required": false, "type": "string"}]}
        },
        "/seo/meta": {
            "get": {"tags": ["SEO"], "summary": "Page meta tags", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "url", "in": "query", "required": false, "type": "string"}]}
        },
        "/seo/breadcrumbs": {
            "get": {"tags": ["SEO"], "summary": "Breadcrumb trail", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "page", "in": "query", "required": false, "type": "string"}, {"name": "q", "in": "query", "required": false, "type": "string"}]}
        },
        "/auth/login": {
            "post": {"tags": ["Auth"], "summary": "Administrator login", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}]}
        },
        "/exports/download": {
            "get": {"tags": ["Admin"], "summary": "Download a signed export", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Expired link", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "token", "in": "query", "required": true, "type": "string"}]}
        },
        "/admin/me": {
            "get": {"tags": ["Auth"], "summary": "Current administrator", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/admin/metrics": {
            "get": {"tags": ["Admin"], "summary": "Metrics snapshot", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/admin/contact": {
            "put": {"tags": ["Admin"], "summary": "Replace contact details", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ContactInfo"}}], "security": [{"BearerAuth": []}]}
        },
        "/admin/gallery": {
            "post": {"tags": ["Admin"], "summary": "Add a gallery image", "produces": ["application/json"], "responses": {"201": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GalleryImage"}}], "security": [{"BearerAuth": []}]}
        },
        "/admin/gallery/{id}": {
            "delete": {"tags": ["Admin"], "summary": "Delete a gallery image", "produces": ["application/json"], "responses": {"204": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "security": [{"BearerAuth": []}]}
        },
        "/admin/notices": {
            "put": {"tags": ["Admin"], "summary": "Replace notices", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/admin/notices/{category}": {
            "post": {"tags": ["Admin"], "summary": "Add a notice", "produces": ["application/json"], "responses": {"201": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "category", "in": "path", "required": true, "type": "string"}], "security": [{"BearerAuth": []}]}
        },
        "/admin/notices/{category}/{id}": {
            "delete": {"tags": ["Admin"], "summary": "Delete a notice", "produces": ["application/json"], "responses": {"204": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "category", "in": "path", "required": true, "type": "string"}, {"name": "id", "in": "path", "required": true, "type": "string"}], "security": [{"BearerAuth": []}]}
        },
        "/admin/uniforms/{gender}/{season}": {
            "post": {"tags": ["Admin"], "summary": "Add a uniform item", "produces": ["application/json"], "responses": {"201": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "gender", "in": "path", "required": true, "type": "string"}, {"name": "season", "in": "path", "required": true, "type": "string"}], "security": [{"BearerAuth": []}]}
        },
        "/admin/uniforms/{gender}/{season}/{id}": {
            "patch": {"tags": ["Admin"], "summary": "Update a uniform item", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "gender", "in": "path", "required": true, "type": "string"}, {"name": "season", "in": "path", "required": true, "type": "string"}, {"name": "id", "in": "path", "required": true, "type": "string"}], "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Admin"], "summary": "Delete a uniform item", "produces": ["application/json"], "responses": {"204": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "gender", "in": "path", "required": true, "type": "string"}, {"name": "season", "in": "path", "required": true, "type": "string"}, {"name": "id", "in": "path", "required": true, "type": "string"}], "security": [{"BearerAuth": []}]}
        },
        "/admin/posts": {
            "post": {"tags": ["Admin"], "summary": "Create a post", "produces": ["application/json"], "responses": {"201": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/admin/posts/{id}": {
            "patch": {"tags": ["Admin"], "summary": "Update a post", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Admin"], "summary": "Delete a post", "produces": ["application/json"], "responses": {"204": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "security": [{"BearerAuth": []}]}
        },
        "/admin/submissions/export": {
            "post": {"tags": ["Admin"], "summary": "Export submissions", "produces": ["application/json"], "responses": {"201": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportRequest"}}], "security": [{"BearerAuth": []}]}
        },
        "/admin/submissions/{form}": {
            "get": {"tags": ["Admin"], "summary": "List submissions", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "form", "in": "path", "required": true, "type": "string"}], "security": [{"BearerAuth": []}]}
        },
        "/admin/submissions/{form}/{id}": {
            "get": {"tags": ["Admin"], "summary": "Get a submission", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "form", "in": "path", "required": true, "type": "string"}, {"name": "id", "in": "path", "required": true, "type": "string"}], "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Admin"], "summary": "Delete a submission", "produces": ["application/json"], "responses": {"204": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "form", "in": "path", "required": true, "type": "string"}, {"name": "id", "in": "path", "required": true, "type": "string"}], "security": [{"BearerAuth": []}]}
        },
        "/admin/submissions/{form}/{id}/status": {
            "patch": {"tags": ["Admin"], "summary": "Update submission status", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "parameters": [{"name": "form", "in": "path", "required": true, "type": "string"}, {"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StatusRequest"}}], "security": [{"BearerAuth": []}]}
        },
        "/admin/statistics": {
            "get": {"tags": ["Admin"], "summary": "Submission statistics", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/admin/validation-logs": {
            "get": {"tags": ["Admin"], "summary": "Validation log", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/admin/search-analytics": {
            "get": {"tags": ["Admin"], "summary": "Search analytics", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/admin/backup": {
            "get": {"tags": ["Admin"], "summary": "Download a JSON backup", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        }
    },
    "definitions": {
        "APIError": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "status": {"type": "integer"}}},
        "Pagination": {"type": "object", "properties": {"page": {"type": "integer"}, "page_size": {"type": "integer"}, "total_count": {"type": "integer"}}},
        "ResponseEnvelope": {"type": "object", "properties": {"data": {"type": "object"}, "error": {"$ref": "#/definitions/APIError"}, "pagination": {"$ref": "#/definitions/Pagination"}, "meta": {"type": "object"}}},
        "LoginRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "SubmitRequest": {"type": "object", "properties": {"values": {"type": "object", "additionalProperties": {"type": "string"}}, "page": {"type": "string"}, "sessionId": {"type": "string"}}},
        "FieldCheckRequest": {"type": "object", "properties": {"field": {"type": "string"}, "value": {"type": "string"}}},
        "DraftRequest": {"type": "object", "properties": {"page": {"type": "string"}, "values": {"type": "object", "additionalProperties": {"type": "string"}}}},
        "CommentRequest": {"type": "object", "properties": {"author": {"type": "string"}, "text": {"type": "string"}}},
        "ContactInfo": {"type": "object", "properties": {"email": {"type": "string"}, "phone": {"type": "string"}, "address": {"type": "object"}, "officeHours": {"type": "array", "items": {"type": "object"}}, "schoolHours": {"type": "array", "items": {"type": "object"}}}},
        "GalleryImage": {"type": "object", "properties": {"src": {"type": "string"}, "alt": {"type": "string"}}},
        "ExportRequest": {"type": "object", "properties": {"form": {"type": "string"}, "format": {"type": "string"}}},
        "StatusRequest": {"type": "object", "properties": {"status": {"type": "string"}}}
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
