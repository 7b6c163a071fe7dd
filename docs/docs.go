// Package docs registers the OpenAPI description served at /swagger/*any.
// Keep it in step with the handler annotations: `swag init -g cmd/server/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/delete/user/{id}": {
            "delete": {
                "description": "Deletes the account, its profile, every relationship and message referencing it, and its photo.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Delete an account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.DeleteUserResponse"
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/edit/{messageId}": {
            "put": {
                "description": "Replaces the content and pushes message_edited to both participants.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "messages"
                ],
                "summary": "Edit a message",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Message ID",
                        "name": "messageId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New content",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.EditMessageInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.EditMessageResponse"
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found or not modified",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/events/{userId}": {
            "get": {
                "description": "Server-sent events carrying receive_message, message_edited and friend_request_received for the user.",
                "produces": [
                    "text/event-stream"
                ],
                "tags": [
                    "live"
                ],
                "summary": "Stream live events",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/file/{userId}": {
            "get": {
                "produces": [
                    "application/octet-stream"
                ],
                "tags": [
                    "profiles"
                ],
                "summary": "Download a profile photo",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/friends/user": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "friendship"
                ],
                "summary": "Accept or refuse a friend request",
                "parameters": [
                    {
                        "description": "Pair and new status",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.UpdateRequestInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad status",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "No relationship",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a pending request. Fails if the pair already has a relationship, in either direction.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "friendship"
                ],
                "summary": "Send a friend request",
                "parameters": [
                    {
                        "description": "Requester and responder",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.FriendPairInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.RelationshipResponse"
                        }
                    },
                    "400": {
                        "description": "Missing field or duplicate request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Removes the relationship and the whole conversation between the two users.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "friendship"
                ],
                "summary": "Delete a relationship",
                "parameters": [
                    {
                        "description": "The two users",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.FriendPairInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.DeleteRelationResponse"
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/friends/{status}/user/{id}": {
            "get": {
                "description": "Returns the profiles of the user's counterparts in relationships with the given status.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "friendship"
                ],
                "summary": "List relationships by status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Relationship status",
                        "name": "status",
                        "in": "path",
                        "required": true,
                        "enum": [
                            "accepted",
                            "refused",
                            "pending"
                        ]
                    },
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.FriendsResponse"
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/login/user": {
            "post": {
                "description": "Authenticates with email and password; returns the profile and a new token.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Log in a user",
                "parameters": [
                    {
                        "description": "Login Info",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.LoginInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/messages/conversation/{a}/{b}": {
            "get": {
                "description": "Every message exchanged between the two users, oldest first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "messages"
                ],
                "summary": "Get a conversation",
                "parameters": [
                    {
                        "type": "string",
                        "description": "First user ID",
                        "name": "a",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Second user ID",
                        "name": "b",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ConversationResponse"
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/ping": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.MessageResponse"
                        }
                    }
                }
            }
        },
        "/profiles/user/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profiles"
                ],
                "summary": "Get a profile",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ProfileResponse"
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "description": "Partial update; interests are merged into the existing set without duplicates.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profiles"
                ],
                "summary": "Update a profile",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.UpdateProfileInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ProfileResponse"
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/profiles/users": {
            "get": {
                "description": "Returns every profile, or one page of them when page is given.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profiles"
                ],
                "summary": "List profiles",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "limit",
                        "in": "query",
                        "default": 10
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ProfilesResponse"
                        }
                    },
                    "500": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/register/user": {
            "post": {
                "description": "Creates an account and its default profile.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "Registration Info",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.RegisterInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.RegisterResponse"
                        }
                    },
                    "400": {
                        "description": "Missing field or email already in use",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/send": {
            "post": {
                "description": "Stores the message and pushes receive_message to both participants.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "messages"
                ],
                "summary": "Send a message",
                "parameters": [
                    {
                        "description": "Message",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SendMessageInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.SendMessageResponse"
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/signalement": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Report a user",
                "parameters": [
                    {
                        "description": "Report",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateReportInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.ReportResponse"
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/signalements": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Newest first. Admin only.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "List reports",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "limit",
                        "in": "query",
                        "default": 10
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ReportsResponse"
                        }
                    },
                    "401": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/upload": {
            "post": {
                "description": "Stores the file as the user's photo, replacing the previous one.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profiles"
                ],
                "summary": "Upload a profile photo",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Photo",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "userId",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.UploadResponse"
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/user/{id}": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Update account credentials",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.UpdateUserInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.ConversationResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Conversation found"
                },
                "messages": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/messaging.Payload"
                    }
                }
            }
        },
        "handler.CreateReportInput": {
            "type": "object",
            "required": [
                "reason",
                "reportedId",
                "reporterId"
            ],
            "properties": {
                "reason": {
                    "type": "string",
                    "example": "Spam"
                },
                "reportedId": {
                    "type": "string"
                },
                "reporterId": {
                    "type": "string"
                }
            }
        },
        "handler.DeleteRelationResponse": {
            "type": "object",
            "properties": {
                "deletedMessagesCount": {
                    "type": "integer"
                },
                "message": {
                    "type": "string",
                    "example": "Relationship deleted"
                }
            }
        },
        "handler.DeleteUserResponse": {
            "type": "object",
            "properties": {
                "deletedMessagesCount": {
                    "type": "integer"
                },
                "deletedProfilesCount": {
                    "type": "integer"
                },
                "deletedRelationshipsCount": {
                    "type": "integer"
                },
                "message": {
                    "type": "string",
                    "example": "User deleted successfully"
                }
            }
        },
        "handler.EditMessageInput": {
            "type": "object",
            "required": [
                "content"
            ],
            "properties": {
                "content": {
                    "type": "string",
                    "example": "Salut, ça va ?"
                }
            }
        },
        "handler.EditMessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Message updated"
                },
                "updatedMessage": {
                    "$ref": "#/definitions/messaging.Payload"
                }
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "invalid_input"
                },
                "message": {
                    "type": "string",
                    "example": "An error message"
                }
            }
        },
        "handler.FriendPairInput": {
            "type": "object",
            "required": [
                "receiverId",
                "senderId"
            ],
            "properties": {
                "receiverId": {
                    "type": "string"
                },
                "senderId": {
                    "type": "string"
                }
            }
        },
        "handler.FriendsResponse": {
            "type": "object",
            "properties": {
                "friends": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Profile"
                    }
                },
                "message": {
                    "type": "string",
                    "example": "Friends found"
                }
            }
        },
        "handler.LoginInput": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string",
                    "example": "joe@example.com"
                },
                "password": {
                    "type": "string",
                    "example": "password123"
                }
            }
        },
        "handler.LoginResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Login successful"
                },
                "profile": {
                    "$ref": "#/definitions/models.Profile"
                },
                "token": {
                    "type": "string"
                }
            }
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Done"
                }
            }
        },
        "handler.PaginationMeta": {
            "type": "object",
            "properties": {
                "current_page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_items": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        },
        "handler.ProfileResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Profile found"
                },
                "profile": {
                    "$ref": "#/definitions/models.Profile"
                }
            }
        },
        "handler.ProfilesResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Profiles found"
                },
                "meta": {
                    "$ref": "#/definitions/handler.PaginationMeta"
                },
                "profiles": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Profile"
                    }
                }
            }
        },
        "handler.RegisterInput": {
            "type": "object",
            "required": [
                "email",
                "firstName",
                "lastName",
                "password",
                "sexe"
            ],
            "properties": {
                "email": {
                    "type": "string",
                    "example": "joe@example.com"
                },
                "firstName": {
                    "type": "string",
                    "example": "Joe"
                },
                "lastName": {
                    "type": "string",
                    "example": "Doe"
                },
                "password": {
                    "type": "string",
                    "example": "password123"
                },
                "sexe": {
                    "type": "string",
                    "example": "m"
                }
            }
        },
        "handler.RegisterResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "User registered successfully"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "handler.RelationshipResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Friend request sent"
                },
                "relationship": {
                    "$ref": "#/definitions/models.Relationship"
                }
            }
        },
        "handler.ReportResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Report submitted"
                },
                "report": {
                    "$ref": "#/definitions/models.Report"
                }
            }
        },
        "handler.ReportsResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Reports found"
                },
                "meta": {
                    "$ref": "#/definitions/handler.PaginationMeta"
                },
                "reports": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Report"
                    }
                }
            }
        },
        "handler.SendMessageInput": {
            "type": "object",
            "required": [
                "content",
                "receiverId",
                "senderId"
            ],
            "properties": {
                "content": {
                    "type": "string",
                    "example": "Salut !"
                },
                "receiverId": {
                    "type": "string"
                },
                "senderId": {
                    "type": "string"
                }
            }
        },
        "handler.SendMessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Message sent"
                },
                "newMessage": {
                    "$ref": "#/definitions/messaging.Payload"
                }
            }
        },
        "handler.UpdateProfileInput": {
            "type": "object",
            "properties": {
                "bio": {
                    "type": "string",
                    "example": "Second-year CS student"
                },
                "campus": {
                    "type": "string",
                    "example": "Lyon"
                },
                "firstName": {
                    "type": "string"
                },
                "interests": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "go",
                        "chess"
                    ]
                },
                "isTutor": {
                    "type": "boolean"
                },
                "lastName": {
                    "type": "string"
                },
                "level": {
                    "type": "string",
                    "example": "L2"
                },
                "program": {
                    "type": "string",
                    "example": "Computer Science"
                },
                "sexe": {
                    "type": "string"
                }
            }
        },
        "handler.UpdateRequestInput": {
            "type": "object",
            "required": [
                "receiverId",
                "senderId",
                "status"
            ],
            "properties": {
                "receiverId": {
                    "type": "string"
                },
                "senderId": {
                    "type": "string"
                },
                "status": {
                    "enum": [
                        "accepted",
                        "refused"
                    ],
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.RelationshipStatus"
                        }
                    ]
                }
            }
        },
        "handler.UpdateUserInput": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "example": "joe.doe@example.com"
                },
                "password": {
                    "type": "string",
                    "example": "newpassword"
                }
            }
        },
        "handler.UploadResponse": {
            "type": "object",
            "properties": {
                "fileUrl": {
                    "type": "string",
                    "example": "/file/4f1c2a9e-6d0b-4d8e-9a51-0c7a9a0f3b11"
                },
                "message": {
                    "type": "string",
                    "example": "Photo uploaded"
                }
            }
        },
        "messaging.Payload": {
            "type": "object",
            "description": "Payload is the wire form of a message, used by HTTP responses and live events alike.",
            "properties": {
                "content": {
                    "type": "string",
                    "example": "Salut !"
                },
                "id": {
                    "type": "string",
                    "example": "4f1c2a9e-6d0b-4d8e-9a51-0c7a9a0f3b11"
                },
                "receiverId": {
                    "type": "string"
                },
                "senderId": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2024-03-01T10:15:30.000Z"
                }
            }
        },
        "models.Profile": {
            "type": "object",
            "properties": {
                "bio": {
                    "type": "string"
                },
                "campus": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "firstName": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "interests": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isTutor": {
                    "type": "boolean"
                },
                "lastName": {
                    "type": "string"
                },
                "level": {
                    "type": "string"
                },
                "photoUrl": {
                    "type": "string"
                },
                "program": {
                    "type": "string"
                },
                "sexe": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "models.Relationship": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "requesterId": {
                    "type": "string"
                },
                "responderId": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/models.RelationshipStatus"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "models.RelationshipStatus": {
            "type": "string",
            "enum": [
                "pending",
                "accepted",
                "refused"
            ],
            "x-enum-varnames": [
                "StatusPending",
                "StatusAccepted",
                "StatusRefused"
            ]
        },
        "models.Report": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                },
                "reportedId": {
                    "type": "string"
                },
                "reporterId": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CampusConnect API",
	Description:      "Accounts, profiles, friendships, messaging and reports for CampusConnect.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
